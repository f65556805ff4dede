package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/eotg/internal/chart"
	"git.lost.host/meutraa/eotg/internal/config"
	"git.lost.host/meutraa/eotg/internal/judge"
	"git.lost.host/meutraa/eotg/internal/parser"
	"git.lost.host/meutraa/eotg/internal/schedule"
	"git.lost.host/meutraa/eotg/internal/score"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	kingpin.Parse()
	config.Setup()
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func describe(n *schedule.Note) string {
	if n.Cell != "" {
		return fmt.Sprintf("%v %v.%v (cell %v)", n.Event.Type, n.Event.Measure, n.Event.Beat, n.Cell)
	}
	return fmt.Sprintf("%v %v.%v", n.Event.Type, n.Event.Measure, n.Event.Beat)
}

// Start song playback after the section delay, sped up with the session
func playAudio(dir string) (func(), error) {
	var mp3File, ogg string
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3":
			mp3File = p
		case ".ogg":
			ogg = p
		}
		return nil
	}); nil != err {
		return nil, fmt.Errorf("unable to walk song directory: %w", err)
	}

	audioFile := mp3File
	if ogg != "" {
		audioFile = ogg
	}
	if audioFile == "" {
		return nil, errors.New("no .mp3/.ogg next to the chart")
	}

	f, err := os.Open(audioFile)
	if nil != err {
		return nil, err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	if ogg != "" {
		streamer, format, err = vorbis.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		f.Close()
		return nil, err
	}

	speaker.Init(beep.SampleRate(math.Round(float64(format.SampleRate)**config.Rate)),
		format.SampleRate.N(time.Second/60))

	go func() {
		time.Sleep(*config.Delay)
		speaker.Play(streamer)
	}()

	return func() { streamer.Close() }, nil
}

func run() error {
	var psr parser.Parser = &parser.DefaultParser{}
	var scr score.Scorer = &score.DefaultScorer{}
	var sch schedule.Scheduler = &schedule.DefaultScheduler{}
	var eng judge.Engine = &judge.DefaultEngine{}

	data, err := ioutil.ReadFile(*config.ChartFile)
	if nil != err {
		return fmt.Errorf("unable to read chart: %w", err)
	}
	def, err := psr.ParseBytes(data)
	if nil != err {
		return err
	}

	if ok, issues := chart.Validate(def); !ok {
		for _, issue := range issues {
			log.Println("chart:", issue)
		}
		// Structural issues are advisory, a broken grid shape is not
		if def.BPM <= 0 || def.Measures <= 0 || def.BeatsPerMeasure <= 0 {
			return errors.New("chart grid shape is invalid, refusing to play")
		}
	}

	notes, evErrs := sch.Schedule(def.Snapshot(), *config.Delay, *config.Lead)
	for _, ee := range evErrs {
		log.Println("skipped:", ee.Error())
	}
	if len(notes) == 0 {
		return errors.New("chart has no schedulable notes")
	}

	if err := scr.Init(); nil != err {
		return fmt.Errorf("unable to open session db: %w", err)
	}
	defer scr.Deinit()

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}()

	if !*config.NoAudio {
		stop, err := playAudio(filepath.Dir(*config.ChartFile))
		if nil != err {
			log.Println("playing silent:", err)
		} else {
			defer stop()
		}
	}

	width := 80
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); nil == err {
		width = cols
	}
	fmt.Printf("%v\n%v  %v notes\n%v\n",
		strings.Repeat("─", width), def.Title, len(notes), strings.Repeat("─", width))

	window := *config.Window
	end := notes[len(notes)-1].Time
	for _, n := range notes {
		if n.IsHold && n.HoldEnd > end {
			end = n.HoldEnd
		}
	}
	end += window + time.Second

	counts := make([]int, len(config.Judgements))
	sumOfDistance := time.Duration(0)
	mean, stdev := 0.0, 0.0
	totalHits := 0.0
	errorsByNote := map[*schedule.Note]time.Duration{}
	var pendingHold *schedule.Note

	onHit := func(n *schedule.Note, d time.Duration) {
		idx := config.Classify(d)
		counts[idx]++
		errorsByNote[n] = d
		sumOfDistance += d
		totalHits++
		fmt.Printf("%v  %+6.1fms  %v\n", config.Judgements[idx].Name,
			float64(d)/float64(time.Millisecond), describe(n))
		if n.IsHold {
			pendingHold = n
		}
	}

	start := time.Now()
	ticker := time.NewTicker(*config.FramePeriod)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Duration(float64(time.Since(start)) * *config.Rate)
		if now > end {
			break
		}

		for _, n := range eng.SweepMissed(notes, now, window) {
			counts[len(counts)-1]++
			fmt.Printf("%v           %v\n", config.Judgements[len(config.Judgements)-1].Name, describe(n))
			if pendingHold == n {
				pendingHold = nil
			}
		}

		for i := 0; i < len(keyChannel); i++ {
			key := <-keyChannel
			if key.Key == keyboard.KeyEsc {
				return nil
			}
			if !config.IsHitKey(key.Rune) {
				continue
			}
			if nil != pendingHold {
				// Terminals have no key-up, a second press releases
				acc, err := eng.EvaluateHoldRelease(pendingHold, now)
				if nil == err {
					fmt.Printf("    release  %+6.1fms  %v\n",
						float64(acc)/float64(time.Millisecond), describe(pendingHold))
				}
				pendingHold = nil
				continue
			}
			n, d := eng.TryJudge(notes, now, window)
			if nil == n {
				continue
			}
			onHit(n, d)
		}

		if *config.Autoplay {
			for _, n := range notes {
				if !eng.CanBeJudged(n) || n.Time > now {
					continue
				}
				hit, d := eng.TryJudge(notes, n.Time, window)
				if nil != hit {
					onHit(hit, d)
				}
			}
			if nil != pendingHold && now >= pendingHold.HoldEnd {
				if acc, err := eng.EvaluateHoldRelease(pendingHold, pendingHold.HoldEnd); nil == err {
					fmt.Printf("    release  %+6.1fms  %v\n",
						float64(acc)/float64(time.Millisecond), describe(pendingHold))
				}
				pendingHold = nil
			}
		}

		for _, n := range sch.DispatchDue(notes, now) {
			switch n.Event.Type {
			case chart.SoundEffect:
				fmt.Printf("      sound           %v (%v)\n", n.Event.SoundPackID, n.Event.SoundType)
			case chart.Animation:
				fmt.Printf("  animation           %v: %v\n", n.Event.TargetObjectID, n.Event.AnimationTrigger)
			}
		}
	}

	if totalHits > 1 {
		mean = float64(sumOfDistance) / totalHits
		for _, d := range errorsByNote {
			xi := float64(d) - mean
			stdev += xi * xi
		}
		stdev /= totalHits - 1
		stdev = math.Sqrt(stdev)
	}

	fmt.Printf("%v\n", strings.Repeat("─", width))
	for i, judgement := range config.Judgements {
		fmt.Printf("%v:  %6v\n", judgement.Name, counts[i])
	}
	fmt.Printf("       Mean:  %6.2fms\n", mean/float64(time.Millisecond))
	fmt.Printf("      Stdev:  %6.2fms\n", stdev/float64(time.Millisecond))

	results := make([]score.Result, 0, len(notes))
	for _, n := range notes {
		r := score.Result{
			Measure: n.Event.Measure,
			Beat:    n.Event.Beat,
			Cell:    n.Cell,
			State:   n.State,
		}
		if d, ok := errorsByNote[n]; ok {
			r.Error = d
		}
		results = append(results, r)
		eng.Cleanup(n)
	}
	sum := score.HashChart(data)
	scr.Save(sum, *config.Lead, window, results)

	histories := scr.Load(sum)
	if len(histories) > 1 {
		best := time.Duration(1<<63 - 1)
		for _, h := range histories {
			if hits, m := h.Hits(); hits > 0 && m < best {
				best = m
			}
		}
		fmt.Printf("   Sessions:  %6v  best mean %v\n", len(histories), best)
	}

	return nil
}
