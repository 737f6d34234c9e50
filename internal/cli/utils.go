// Package cli provides CLI output and REPL utilities for Annai.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/annai/internal/assist"
	"github.com/hyperjump/annai/internal/models"
	"github.com/hyperjump/annai/internal/present"
)

// OutputFormat is the format for answer output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteAnswer writes an answer to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteAnswer(w io.Writer, answer *models.Answer, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(assist.BuildResponse(answer))
	default:
		writeAnswerText(w, answer)
		return nil
	}
}

func writeAnswerText(w io.Writer, answer *models.Answer) {
	if answer.Count() == 0 {
		fmt.Fprintf(w, "\n%s\n", present.NoMatchMessage(answer.Domain))
		for _, alt := range answer.Alternatives {
			fmt.Fprintf(w, "\n%s\n", alt)
		}
		return
	}
	fmt.Fprintf(w, "\nHere are some recommendations based on your request:\n\n")
	fmt.Fprintln(w, present.FormatAnswer(answer))
}
