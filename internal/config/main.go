package config

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	ChartFile   = kingpin.Arg("chart", "Chart file (.yaml)").Required().ExistingFile()
	Lead        = kingpin.Flag("lead", "Spawn to judgement interval").Default("2s").Short('l').Duration()
	Window      = kingpin.Flag("window", "Max judgement window").Default("180ms").Short('w').Duration()
	Delay       = kingpin.Flag("delay", "Section start delay").Default("1.5s").Short('d').Duration()
	Rate        = kingpin.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	FramePeriod = kingpin.Flag("frame-period", "Driver tick period").Default("1ms").Short('p').Duration()
	Autoplay    = kingpin.Flag("autoplay", "Hit every note exactly on time").Short('a').Bool()
	NoAudio     = kingpin.Flag("no-audio", "Skip song playback").Bool()
	keys        = kingpin.Flag("keys", "Keys that count as a hit").Default("zxcv").Short('k').String()

	Judgements []Judgement
)

// Judgement is an accuracy tier, classified from the timing error the
// engine reports. The last entry is the miss bucket.
type Judgement struct {
	Time time.Duration
	Name string
}

func Keys() []rune {
	return []rune(*keys)
}

func IsHitKey(r rune) bool {
	for _, c := range Keys() {
		if r == c {
			return true
		}
	}
	return false
}

// Classify maps a signed timing error onto a tier index.
func Classify(d time.Duration) int {
	if d < 0 {
		d = -d
	}
	for i := 0; i < len(Judgements)-1; i++ {
		if d <= Judgements[i].Time {
			return i
		}
	}
	return len(Judgements) - 1
}

// Setup finishes configuration once flags are parsed.
func Setup() {
	Judgements = []Judgement{
		{Time: 5 * time.Millisecond, Name: "      \033[1;31mE\033[38;5;208mx\033[1;33ma\033[1;32mc\033[38;5;153mt\033[0m"},
		{Time: 10 * time.Millisecond, Name: " \033[1;35mRidiculous\033[0m"},
		{Time: 20 * time.Millisecond, Name: "  \033[38;5;153mMarvelous\033[0m"},
		{Time: 40 * time.Millisecond, Name: "      \033[1;36mGreat\033[0m"},
		{Time: 60 * time.Millisecond, Name: "       \033[1;32mGood\033[0m"},
		{Time: *Window, Name: "       \033[1;31mOkay\033[0m"},
		{Time: -1, Name: "       \033[1;31mMiss\033[0m"},
	}
}

func init() {
	kingpin.Version("0.1.0")
}
