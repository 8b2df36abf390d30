package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/chezconf/pkg/errors"
	"github.com/arthur-debert/chezconf/pkg/ui/prompt"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  prompt.Answer
		ok    bool
	}{
		{"y", prompt.Yes, true},
		{"YES", prompt.Yes, true},
		{"  Yep ", prompt.Yes, true},
		{"bet", prompt.Yes, true},
		{"sure", prompt.Yes, true},
		{"n", prompt.No, true},
		{"Nope", prompt.No, true},
		{"not really", prompt.No, true},
		{"never", prompt.No, true},
		{"skip", prompt.Skip, true},
		{"S", prompt.Skip, true},
		{"pass", prompt.Skip, true},
		{"", 0, false},
		{"maybe", 0, false},
		{"yess", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := prompt.ParseAnswer(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "yes", prompt.Yes.String())
	assert.Equal(t, "no", prompt.No.String())
	assert.Equal(t, "skip", prompt.Skip.String())
	assert.Equal(t, "unknown", prompt.Answer(0).String())
}

func TestAskTristateRetriesUntilRecognized(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("maybe\n\nwhat\nnah\n"), &out)

	answer, err := c.AskTristate("Enable proxy?")
	require.NoError(t, err)
	assert.Equal(t, prompt.No, answer)

	assert.Equal(t, 4, strings.Count(out.String(), "Enable proxy? (y/n/skip): "))
	assert.Equal(t, 3, strings.Count(out.String(), prompt.MsgAnswerHint))
}

func TestAskTristateEndOfInput(t *testing.T) {
	c := prompt.NewConsole(strings.NewReader("huh\n"), &bytes.Buffer{})

	_, err := c.AskTristate("Continue?")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInput))
}

func TestAskValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"empty uses default", "\n", "http://old", "http://old"},
		{"whitespace uses default", "   \n", "http://old", "http://old"},
		{"value is trimmed", "  http://new  \n", "http://old", "http://new"},
		{"empty default stays empty", "\n", "", ""},
		{"last line without newline", "token", "", "token"},
		{"windows line ending", "value\r\n", "", "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := prompt.NewConsole(strings.NewReader(tt.input), &out)

			got, err := c.AskValue("📡 HTTP Proxy", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "📡 HTTP Proxy ["+tt.def+"]: ", out.String())
		})
	}
}

func TestAskValueEndOfInput(t *testing.T) {
	c := prompt.NewConsole(strings.NewReader(""), &bytes.Buffer{})

	_, err := c.AskValue("Token", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInput))
}

func TestSequentialQuestionsShareReader(t *testing.T) {
	c := prompt.NewConsole(strings.NewReader("y\nexample.org\n"), &bytes.Buffer{})

	answer, err := c.AskTristate("Configure?")
	require.NoError(t, err)
	assert.Equal(t, prompt.Yes, answer)

	value, err := c.AskValue("URL", "")
	require.NoError(t, err)
	assert.Equal(t, "example.org", value)
}
