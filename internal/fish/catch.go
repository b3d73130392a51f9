package fish

import (
	"time"

	"github.com/google/uuid"
)

// Catch is the journal record of a landed fish.
type Catch struct {
	Id            int64
	SessionId     uuid.UUID
	Player        string
	FishId        FishId
	Fish          string
	Rarity        int
	Price         int
	EnvironmentId EnvironmentId
	CaughtAt      time.Time
}

func NewCatch(session uuid.UUID, player string, f Fish, env EnvironmentId) Catch {
	return Catch{
		SessionId:     session,
		Player:        player,
		FishId:        f.Id,
		Fish:          f.Name,
		Rarity:        f.Rarity,
		Price:         f.Price,
		EnvironmentId: env,
		CaughtAt:      time.Now(),
	}
}
