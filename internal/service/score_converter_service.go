package service

import (
	"fmt"
	"math"
)

const (
	MinBand = 0.0
	MaxBand = 9.0

	MaxListeningCorrect = 40
)

// listeningBandTable maps raw correct answers to a listening band. Counts below
// the lowest key score 1.0.
var listeningBandTable = map[int]float64{
	40: 9.0,
	39: 8.5, 38: 8.5,
	37: 8.0, 36: 8.0,
	35: 7.5, 34: 7.5,
	33: 7.0, 32: 7.0,
	31: 6.5, 30: 6.5,
	29: 6.0, 28: 6.0, 27: 6.0,
	26: 5.5, 25: 5.5, 24: 5.5, 23: 5.5,
	22: 5.0, 21: 5.0, 20: 5.0,
	19: 4.5, 18: 4.5, 17: 4.5, 16: 4.5,
	15: 4.0, 14: 4.0, 13: 4.0,
	12: 3.5, 11: 3.5, 10: 3.5,
	9: 3.0, 8: 3.0,
	7: 2.5,
	6: 2.0, 5: 2.0, 4: 2.0,
}

const listeningBandFloor = 1.0

type ScoreConverterService interface {
	ListeningBand(correct int) (float64, error)
	// ClampBand limits a teacher supplied band to [0, 9] at one decimal.
	ClampBand(band float64) float64
	// OverallBand is the mean of the three bands rounded half up to the nearest 0.5.
	OverallBand(listening, reading, writing float64) float64
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) ListeningBand(correct int) (float64, error) {
	if correct < 0 || correct > MaxListeningCorrect {
		return 0, fmt.Errorf("%w: correct answers %d is out of range (0-%d)", ErrValidation, correct, MaxListeningCorrect)
	}
	if band, ok := listeningBandTable[correct]; ok {
		return band, nil
	}
	return listeningBandFloor, nil
}

func (s *scoreConverterServiceImpl) ClampBand(band float64) float64 {
	if math.IsNaN(band) || band < MinBand {
		return MinBand
	}
	if band > MaxBand {
		return MaxBand
	}
	return math.Round(band*10) / 10
}

func (s *scoreConverterServiceImpl) OverallBand(listening, reading, writing float64) float64 {
	// Work in tenths so that x.25 and x.75 means are exact ties.
	tenths := toTenths(listening) + toTenths(reading) + toTenths(writing)
	// mean*2 = tenths/15; round half up is floor((2*tenths + 15) / 30).
	halves := (2*tenths + 15) / 30
	return float64(halves) / 2
}

func toTenths(band float64) int64 {
	return int64(math.Round(band * 10))
}
