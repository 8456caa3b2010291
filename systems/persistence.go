package systems

import (
	"log"

	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/profile"
)

var profileStore *profile.Store

// InitPersistence opens the per-user profile storage.
func InitPersistence() error {
	s, err := profile.Open("versus")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	profileStore = s
	return nil
}

// LoadProfile returns the saved profile. Without storage, or on a read
// error, it is empty.
func LoadProfile() profile.Profile {
	if profileStore == nil {
		return profile.Parse(nil)
	}
	p, err := profileStore.Load()
	if err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
	}
	return p
}

func saveProfile(p profile.Profile) {
	if profileStore == nil {
		return
	}
	if err := profileStore.Save(p); err != nil {
		log.Printf("Warning: Could not save profile: %v", err)
	}
}

// SelectCharacter stores the character picked for the next match.
func SelectCharacter(character string) {
	p, err := LoadProfile().WithCharacter(character)
	if err != nil {
		log.Printf("Warning: Could not update profile: %v", err)
		return
	}
	saveProfile(p)
}

// NewResultRecorder returns a sink that writes the local fighter's match
// result to the profile. fighterID resolves the local fighter at match end,
// since it is not known until the fighter joins.
func NewResultRecorder(character string, fighterID func() string) events.Sink {
	return events.SinkFunc(func(e events.Event) {
		end, ok := e.(events.MatchEndEvent)
		if !ok {
			return
		}
		outcome := profile.Draw
		switch end.Winner {
		case "":
		case fighterID():
			outcome = profile.Won
		default:
			outcome = profile.Lost
		}
		p, err := LoadProfile().WithResult(character, outcome)
		if err != nil {
			log.Printf("Warning: Could not update profile: %v", err)
			return
		}
		saveProfile(p)
	})
}
