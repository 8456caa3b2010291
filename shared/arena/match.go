package arena

import (
	"log"

	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/netconfig"
)

const (
	reasonKO   = "ko"
	reasonTime = "time"
)

func (a *Arena) updateMatch(dt float64) {
	m := components.Match.Get(a.match)
	switch m.State {
	case netconfig.MatchStateCountdown:
		m.Timer -= dt
		if m.Timer <= 0 {
			m.State = netconfig.MatchStatePlaying
			m.Timer = a.cfg.Match.RoundTime
			log.Printf("[arena] round %d: fight", m.Round)
		}

	case netconfig.MatchStatePlaying:
		if winner, ko := a.knockout(); ko {
			a.endRound(m, winner, reasonKO)
			return
		}
		m.Timer -= dt
		if m.Timer <= 0 {
			m.Timer = 0
			a.endRound(m, a.healthLeader(), reasonTime)
		}

	case netconfig.MatchStateRoundOver:
		m.Timer -= dt
		if m.Timer > 0 {
			return
		}
		if m.Wins[0] >= a.cfg.Match.RoundsToWin || m.Wins[1] >= a.cfg.Match.RoundsToWin ||
			m.Round >= a.cfg.Match.MaxRounds {
			a.finish(m)
			return
		}
		a.nextRound(m)
	}
}

// knockout reports whether a fighter is down and which slot won. Both down
// is a draw.
func (a *Arena) knockout() (int, bool) {
	dead0 := a.fighter(0).Machine.Ledger().IsDead()
	dead1 := a.fighter(1).Machine.Ledger().IsDead()
	switch {
	case dead0 && dead1:
		return -1, true
	case dead0:
		return 1, true
	case dead1:
		return 0, true
	}
	return -1, false
}

// healthLeader returns the slot with the larger share of its health left,
// or -1 when they are even.
func (a *Arena) healthLeader() int {
	r0 := a.fighter(0).Machine.Ledger().Snapshot().HealthRatio()
	r1 := a.fighter(1).Machine.Ledger().Snapshot().HealthRatio()
	switch {
	case r0 > r1:
		return 0
	case r1 > r0:
		return 1
	}
	return -1
}

func (a *Arena) slotID(slot int) string {
	if slot < 0 || slot >= len(a.fighters) {
		return ""
	}
	return a.fighter(slot).ID
}

func (a *Arena) endRound(m *components.MatchData, winner int, reason string) {
	m.AddWin(winner)
	m.State = netconfig.MatchStateRoundOver
	m.Timer = a.cfg.Match.RoundOverTime
	log.Printf("[arena] round %d over (%s): winner slot %d, score %d-%d",
		m.Round, reason, winner, m.Wins[0], m.Wins[1])
	a.sink.Emit(events.RoundEndEvent{Round: m.Round, Winner: a.slotID(winner), Reason: reason})
}

func (a *Arena) finish(m *components.MatchData) {
	m.State = netconfig.MatchStateFinished
	m.Winner = m.Leader()
	m.Timer = 0
	log.Printf("[arena] match %s finished: winner slot %d", m.ID, m.Winner)
	a.sink.Emit(events.MatchEndEvent{MatchID: m.ID, Winner: a.slotID(m.Winner)})
}

// nextRound puts both fighters back on their spawns and starts the
// countdown.
func (a *Arena) nextRound(m *components.MatchData) {
	a.clearProjectiles()
	for slot, e := range a.fighters {
		f := components.Fighter.Get(e)
		if f.HitboxActive {
			a.space.Remove(f.Hitbox)
			f.HitboxActive = false
		}
		if f.Bot != nil {
			f.Bot.Interrupt()
		}
		f.Input = 0
		f.Machine.Reset()
		body{entry: e}.place(a.spawnPoint(slot))
		*components.Tint.Get(e) = components.TintData{}
	}
	m.Round++
	m.RoundWinner = -1
	m.State = netconfig.MatchStateCountdown
	m.Timer = a.cfg.Match.CountdownTime
	log.Printf("[arena] round %d: countdown", m.Round)
}

// Finished reports whether the match is over.
func (a *Arena) Finished() bool {
	return components.Match.Get(a.match).State == netconfig.MatchStateFinished
}
