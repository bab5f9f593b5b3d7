// Command musicsim runs a MUSIC direction-finding simulation and renders
// the resulting pseudo-spectrum to a PNG.
//
// Sources are given as comma-separated angle:snr pairs, angle in degrees
// and SNR in dB:
//
//	musicsim -sources 10:10,40:10,60:10 -out spectrum.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/makhpatten/music-df-simulation/music"
)

func main() {
	var (
		antennas  = flag.Int("antennas", 8, "number of array elements")
		spacing   = flag.Float64("spacing", 0.5, "inter-element spacing in meters")
		carrier   = flag.Float64("carrier", 300e6, "carrier frequency in Hz")
		speed     = flag.Float64("speed", music.SpeedOfLight, "propagation speed in m/s")
		snapshots = flag.Int("snapshots", 100, "number of snapshots")
		sources   = flag.String("sources", "10:10,40:10,60:10", "comma-separated angle:snr pairs")
		scanStart = flag.Float64("scan-start", -90, "first scanned angle in degrees")
		scanStop  = flag.Float64("scan-stop", 90, "last scanned angle in degrees")
		scanStep  = flag.Float64("scan-step", 1, "scan step in degrees")
		seed      = flag.Uint64("seed", 1, "random seed")
		out       = flag.String("out", "spectrum.png", "output PNG path (empty disables plotting)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	specs, err := parseSources(*sources)
	if err != nil {
		logger.Error("invalid -sources", "err", err)
		os.Exit(2)
	}

	sc := music.Scenario{
		Array: music.ArrayConfig{
			NumAntennas: *antennas,
			Spacing:     *spacing,
			CarrierHz:   *carrier,
			WaveSpeed:   *speed,
		},
		Sources:   specs,
		Snapshots: *snapshots,
		Seed:      *seed,
	}
	grid := music.ScanGrid{StartDeg: *scanStart, StopDeg: *scanStop, StepDeg: *scanStep}

	logger.Info("running scenario",
		"antennas", sc.Array.NumAntennas,
		"wavelength_m", sc.Array.Wavelength(),
		"sources", len(sc.Sources),
		"snapshots", sc.Snapshots,
		"seed", sc.Seed)

	spectrum, err := sc.Run(grid)
	if err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	for i, p := range spectrum.Peaks(len(sc.Sources)) {
		logger.Info("peak", "rank", i+1, "angle_deg", p.AngleDeg, "power", p.Power)
	}

	if *out != "" {
		if err := savePlot(spectrum, *out); err != nil {
			logger.Error("plot failed", "err", err)
			os.Exit(1)
		}
		logger.Info("spectrum written", "path", *out)
	}
}

// parseSources parses "angle:snr,angle:snr,..." into source specs.
func parseSources(s string) ([]music.Source, error) {
	var out []music.Source
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		angleStr, snrStr, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("source %q: want angle:snr", pair)
		}

		angle, err := strconv.ParseFloat(angleStr, 64)
		if err != nil {
			return nil, fmt.Errorf("source %q: bad angle: %w", pair, err)
		}

		snr, err := strconv.ParseFloat(snrStr, 64)
		if err != nil {
			return nil, fmt.Errorf("source %q: bad snr: %w", pair, err)
		}

		out = append(out, music.Source{AngleDeg: angle, SNRdB: snr})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no sources in %q", s)
	}

	return out, nil
}
