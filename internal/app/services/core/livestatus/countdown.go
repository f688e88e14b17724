package livestatus

import "fmt"

// FormatCountdown renders seconds as HH:MM:SS. Negative input renders as zero.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
