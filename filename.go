package nanobanana

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// slugPromptRunes is how much of the prompt feeds a derived filename.
const slugPromptRunes = 40

// autoExt is the extension of derived filenames, whatever the MIME type
// of the returned image.
const autoExt = ".png"

var (
	slugDropRe     = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugify lowercases text and reduces it to hyphen-separated word runs.
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugDropRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FilenameDeriver names the output files of one invocation.
type FilenameDeriver struct {
	// Output is the user supplied path for the first image, may be empty
	Output string

	// Prompt seeds the derived name when Output is empty
	Prompt string

	// Now is the clock used for derived names, time.Now when nil
	Now func() time.Time

	base string
}

// Base returns the path of the first image. A derived base is computed
// once, so every image of the invocation shares one timestamp.
func (d *FilenameDeriver) Base() string {
	if d.base != "" {
		return d.base
	}
	if d.Output != "" {
		d.base = d.Output
		return d.base
	}

	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	ts := strconv.FormatInt(now().Unix(), 10)

	slug := Slugify(truncateRunes(d.Prompt, slugPromptRunes))
	if slug == "" {
		d.base = ts + autoExt
	} else {
		d.base = slug + "-" + ts + autoExt
	}
	return d.base
}

// Path returns the output path of the index-th image (1-based). Only the
// first image goes to the base path unchanged.
func (d *FilenameDeriver) Path(index int) string {
	base := d.Base()
	if index <= 1 {
		return base
	}
	return SplitPath(base).WithSuffix(strconv.Itoa(index))
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
