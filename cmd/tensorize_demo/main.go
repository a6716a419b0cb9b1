// tensorize_demo encodes rows of text into BERT-style input tensors and shows
// the resulting token ids, segment labels and padding mask.
//
// The command-line UI is built with the github.com/charmbracelet libraries.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gomlx/exceptions"
)

func main() {
	flag.Parse()

	// Building the UI model loads the tokenizer backend, which panics (via
	// must/exceptions) on bad flags or missing vocabulary files.
	var program *tea.Program
	err := exceptions.TryCatch[error](func() { program = tea.NewProgram(newUIModel()) })
	if err == nil {
		_, err = program.Run()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tensorize_demo failed: %+v\n", err)
		os.Exit(1)
	}
}
