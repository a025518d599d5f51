package fsutil

import (
	"os"
	"time"

	"bulkrename/internal/log"
	"bulkrename/pkg/types"

	"github.com/djherbis/times"
	"github.com/lestrrat-go/strftime"
	"github.com/rwcarlsen/goexif/exif"
)

// DateFor returns the file's date from the given source, formatted with a
// strftime-style format string. Any failure (missing file, wrong file
// type, missing EXIF tag, malformed format) yields the empty string; date
// extraction never produces an error the caller has to handle.
func DateFor(path string, source types.DateSource, format string) string {
	var t time.Time

	switch source {
	case types.DateCreation:
		ts, err := times.Stat(path)
		if err != nil {
			log.Errorf("could not get creation date for %s: %v", path, err)
			return ""
		}
		switch {
		case ts.HasBirthTime():
			t = ts.BirthTime()
		case ts.HasChangeTime():
			t = ts.ChangeTime()
		default:
			t = ts.ModTime()
		}
	case types.DateModification:
		info, err := os.Stat(path)
		if err != nil {
			log.Errorf("could not get modification date for %s: %v", path, err)
			return ""
		}
		t = info.ModTime()
	case types.DateExif:
		var ok bool
		t, ok = exifDate(path)
		if !ok {
			return ""
		}
	default:
		log.Errorf("unknown date source: %s", source)
		return ""
	}

	formatted, err := strftime.Format(format, t)
	if err != nil {
		log.Errorf("invalid date format %q: %v", format, err)
		return ""
	}
	return formatted
}

// exifDate reads the capture time from an image's EXIF metadata,
// preferring DateTimeOriginal and falling back to DateTime.
func exifDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("could not get EXIF date for %s: %v", path, err)
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		log.Errorf("could not get EXIF date for %s: %v", path, err)
		return time.Time{}, false
	}

	t, err := x.DateTime()
	if err != nil {
		log.Errorf("no EXIF date in %s: %v", path, err)
		return time.Time{}, false
	}
	return t, true
}

// ValidDateFormat reports whether format is a well-formed strftime-style
// format string, by formatting the current time with it.
func ValidDateFormat(format string) bool {
	if format == "" {
		return false
	}
	if _, err := strftime.Format(format, time.Now()); err != nil {
		return false
	}
	return true
}
