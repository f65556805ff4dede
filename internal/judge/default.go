package judge

import (
	"errors"
	"time"

	"git.lost.host/meutraa/eotg/internal/schedule"
)

type DefaultEngine struct{}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

func (j *DefaultEngine) CanBeJudged(n *schedule.Note) bool {
	return n.State == schedule.Waiting && n.Event.Type.IsJudged()
}

func (j *DefaultEngine) TryJudge(notes []*schedule.Note, inputTime, window time.Duration) (*schedule.Note, time.Duration) {
	var closest *schedule.Note
	distance := time.Duration(0)
	absDistance := time.Duration(1<<63 - 1)

	for _, n := range notes {
		if !j.CanBeJudged(n) {
			continue
		}
		dd := inputTime - n.Time
		d := abs(dd)
		if d < absDistance {
			distance = dd
			absDistance = d
			closest = n
		} else if nil != closest {
			// Notes are time ordered, the rest are further away
			break
		}
	}

	if nil == closest || absDistance > window {
		return nil, 0
	}

	closest.State = schedule.Hit
	return closest, distance
}

func (j *DefaultEngine) SweepMissed(notes []*schedule.Note, now, window time.Duration) []*schedule.Note {
	missed := []*schedule.Note{}
	for _, n := range notes {
		if !j.CanBeJudged(n) {
			continue
		}
		if n.Time+window < now {
			n.State = schedule.Missed
			missed = append(missed, n)
		}
	}
	return missed
}

func (j *DefaultEngine) EvaluateHoldRelease(n *schedule.Note, releaseTime time.Duration) (time.Duration, error) {
	if !n.IsHold {
		return 0, errors.New("not a hold note")
	}
	if n.State != schedule.Hit {
		return 0, errors.New("hold was never hit")
	}
	return releaseTime - n.HoldEnd, nil
}

func (j *DefaultEngine) Cleanup(n *schedule.Note) bool {
	if !schedule.CanTransition(n.State, schedule.Cleanup) {
		return false
	}
	n.State = schedule.Cleanup
	return true
}

func (j *DefaultEngine) ResetAll(notes []*schedule.Note) {
	for _, n := range notes {
		n.State = schedule.Waiting
	}
}
