package tokens

import (
	"fmt"
	"time"
)

const microsPerDay = int64(24 * time.Hour / time.Microsecond)

// FormatLifetime renders d as "[D day[s], ]H:MM:SS[.ffffff]", the format
// clients already parse for expires_in. Days are floored, so a negative
// duration keeps a non-negative clock: -1s is "-1 day, 23:59:59".
func FormatLifetime(d time.Duration) string {
	us := int64(d.Round(time.Microsecond) / time.Microsecond)
	days := us / microsPerDay
	rem := us % microsPerDay
	if rem < 0 {
		days--
		rem += microsPerDay
	}

	seconds := rem / 1e6
	micros := rem % 1e6
	clock := fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
	if micros > 0 {
		clock += fmt.Sprintf(".%06d", micros)
	}

	switch days {
	case 0:
		return clock
	case 1, -1:
		return fmt.Sprintf("%d day, %s", days, clock)
	default:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
}
