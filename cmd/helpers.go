package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	logger "github.com/rewahq/rewa/internal/logging"
	"github.com/rewahq/rewa/internal/ui"
	"github.com/rewahq/rewa/internal/utils"
)

// startSpinner creates and starts a spinner with the given message when
// running interactively at normal output level. Returns the spinner and a
// function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline() on the final message before printing
// it. In quiet mode the spinner never starts and the final message is
// suppressed.
func startSpinner(l logger.Logger, message string, output logger.CommandOutput, debug bool) (*spinner.Spinner, func()) {
	l.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		l.Warnf("Failed to set spinner color: %v", err)
	}

	animate := output == logger.OutputNormal && !debug && utils.IsTerminal()
	if animate {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		l.Infof("%s", message)
	}

	cleanup := func() {
		if animate {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if animate {
			s.Stop()
		}

		if finalMsg != "" && output != logger.OutputQuiet {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
