package strengthen

import (
	"fmt"
	"time"
)

// FormatClock formats d as HH:MM:SS, negative durations are treated as zero
// and hours are not wrapped at 24.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}
