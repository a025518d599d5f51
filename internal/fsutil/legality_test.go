package fsutil_test

import (
	"testing"

	"bulkrename/internal/fsutil"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicyLegalName(t *testing.T) {
	policy := fsutil.DefaultPolicy

	legal := []string{
		"photo.jpg",
		"IMG_001",
		"report-final.v2.pdf",
		"name with spaces.txt",
		"console.txt", // only the exact device names are reserved
	}
	for _, name := range legal {
		assert.True(t, policy.LegalName(name), "expected %q to be legal", name)
	}

	illegal := []string{
		"",
		"a<b.txt",
		"a>b.txt",
		"a:b.txt",
		`a"b.txt`,
		"a/b.txt",
		`a\b.txt`,
		"a|b.txt",
		"a?b.txt",
		"a*b.txt",
		"CON",
		"con.txt",
		"Com1.jpg",
		"LPT9",
		"ends-in-space ",
		"ends-in-period.",
		"ctrl\x01char",
	}
	for _, name := range illegal {
		assert.False(t, policy.LegalName(name), "expected %q to be illegal", name)
	}
}

func TestRelaxedPolicy(t *testing.T) {
	relaxed := fsutil.NamePolicy{}

	assert.True(t, relaxed.LegalName("con.txt"), "relaxed policy permits reserved device names")
	assert.True(t, relaxed.LegalName("ends-in-period."), "relaxed policy permits trailing periods")
	assert.False(t, relaxed.LegalName("a/b.txt"), "path separators stay illegal under every policy")
	assert.False(t, relaxed.LegalName(""))
}
