package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/annai/internal/models"
)

const banner = `================================================================================
Welcome to the Travel Recommendation Assistant!
================================================================================
I can help you find restaurants, hotels, and vehicle rentals.

Example queries:
- 'Find cheap Italian restaurants in Mumbai with rating above 4'
- 'Show me the best hotels in Borivali'
- 'I need a luxury vehicle for 4 passengers'

Type 'exit', 'quit', or 'bye' to end the conversation.
================================================================================`

// Chat runs the interactive conversation loop, reading queries from r and
// writing answers to w until an exit word or EOF.
func Chat(r io.Reader, w io.Writer, answer func(query string) *models.Answer) {
	fmt.Fprintln(w, banner)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "\n➤ ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "bye":
			fmt.Fprintln(w, "\nThank you for using the Travel Recommendation Assistant. Goodbye!")
			return
		}
		_ = WriteAnswer(w, answer(input), OutputText)
	}
}
