package utils

import (
	"time"

	"github.com/briandowns/spinner"
)

var loadingSpinner *spinner.Spinner

func StartSpinner() {
	loadingSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	loadingSpinner.Suffix = " Asking Cost Explorer..."
	loadingSpinner.Start()
}

func StopSpinner() {
	if loadingSpinner != nil {
		loadingSpinner.Stop()
	}
}
