// Package grader converts percentage scores into letter grades.
package grader

import (
	"errors"
	"fmt"
)

// LetterGrade is one of A, B, C, D or F.
type LetterGrade byte

const (
	A LetterGrade = 'A'
	B LetterGrade = 'B'
	C LetterGrade = 'C'
	D LetterGrade = 'D'
	F LetterGrade = 'F'
)

// Score limits, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

// ErrInvalidScore is wrapped by LetterGradeFor when the score is outside [MinScore, MaxScore].
var ErrInvalidScore = errors.New("invalid score")

func (g LetterGrade) String() string {
	return string(rune(g))
}

// Band is one row of the grading table: scores at or above Min earn Grade.
type Band struct {
	Min   int
	Grade LetterGrade
}

// bands is ordered highest first; the last band catches everything down to MinScore.
var bands = []Band{
	{Min: 90, Grade: A},
	{Min: 80, Grade: B},
	{Min: 70, Grade: C},
	{Min: 60, Grade: D},
	{Min: MinScore, Grade: F},
}

// Bands returns a copy of the grading table, highest band first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// LetterGradeFor returns the letter grade for score.
func LetterGradeFor(score int) (LetterGrade, error) {
	if score < MinScore || score > MaxScore {
		return 0, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidScore, score, MinScore, MaxScore)
	}
	for _, b := range bands {
		if score >= b.Min {
			return b.Grade, nil
		}
	}
	return F, nil
}
