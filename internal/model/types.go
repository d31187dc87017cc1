// Package model defines shared data structures.
package model

import "time"

// Item is a single letter in the catalog.
type Item struct {
	ID             int
	Category       string
	CategorySymbol string
	Text           string
}

// Category groups ordinary items under a shared name.
type Category struct {
	Name   string
	Symbol string
	Total  int
}

// FinalItem is the sentinel letter unlocked after every category is read.
type FinalItem struct {
	Item
	Title string
}

// ViewMode is the state of the letters screen.
type ViewMode int

const (
	ViewCategories ViewMode = iota
	ViewLetters
	ViewFinalLetterPending
	ViewFinalLetterOpen
	ViewAllComplete
)

func (v ViewMode) String() string {
	switch v {
	case ViewCategories:
		return "categories"
	case ViewLetters:
		return "letters"
	case ViewFinalLetterPending:
		return "finalLetterPending"
	case ViewFinalLetterOpen:
		return "finalLetterOpen"
	case ViewAllComplete:
		return "allComplete"
	default:
		return "unknown"
	}
}

// Screen is the top-level screen being shown.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenLetters
	ScreenCake
	ScreenFinal
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenLetters:
		return "letters"
	case ScreenCake:
		return "cake"
	case ScreenFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Config defines greeting settings after flags and config file are merged.
type Config struct {
	Recipient      string
	CatalogPath    string
	Stars          int
	TypewriterMs   int
	ReduceMotion   bool
	HistoryEnabled bool
}

// HistoryConfig defines filters for the history command.
type HistoryConfig struct {
	Since *time.Time
	Last  int
}

// Journey records one pass through the experience that reached the final screen.
type Journey struct {
	ID                  int64
	StartedAt           time.Time
	FinishedAt          time.Time
	LettersRead         int
	CategoriesCompleted int
	Skipped             bool
	Hugs                int
}
