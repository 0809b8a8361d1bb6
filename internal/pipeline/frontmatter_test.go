package pipeline

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestFrontMatter_ScanLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		line        string
		want        FrontMatter
		wantDivider bool
	}{
		{
			name: "title",
			line: "title: Introduction\n",
			want: FrontMatter{Title: "Introduction", Weight: DefaultWeight},
		},
		{
			name: "title with spaces before colon",
			line: "title  : Spaced\n",
			want: FrontMatter{Title: "Spaced", Weight: DefaultWeight},
		},
		{
			name: "title keeps quotes",
			line: "title: \"Quoted\"\n",
			want: FrontMatter{Title: "\"Quoted\"", Weight: DefaultWeight},
		},
		{
			name: "linktitle strips quotes",
			line: "linktitle: \"Intro\"\n",
			want: FrontMatter{LinkTitle: "Intro", Weight: DefaultWeight},
		},
		{
			name: "weight",
			line: "weight: 20\n",
			want: FrontMatter{Weight: 20},
		},
		{
			name: "non-numeric weight ignored",
			line: "weight: high\n",
			want: FrontMatter{Weight: DefaultWeight},
		},
		{
			name: "indented field ignored",
			line: "  title: Nested\n",
			want: FrontMatter{Weight: DefaultWeight},
		},
		{
			name: "CRLF terminator stripped",
			line: "title: Windows\r\n",
			want: FrontMatter{Title: "Windows", Weight: DefaultWeight},
		},
		{
			name:        "divider",
			line:        "---\n",
			want:        FrontMatter{Weight: DefaultWeight},
			wantDivider: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm := NewFrontMatter()
			divider := fm.ScanLine(tt.line)
			if fm != tt.want {
				t.Errorf("ScanLine(%q) = %+v, want %+v", tt.line, fm, tt.want)
			}
			if divider != tt.wantDivider {
				t.Errorf("ScanLine(%q) divider = %v, want %v", tt.line, divider, tt.wantDivider)
			}
		})
	}
}

func TestFrontMatter_Label(t *testing.T) {
	t.Parallel()

	if got := (FrontMatter{Title: "T", LinkTitle: "L"}).Label(); got != "L" {
		t.Errorf("Label() = %q, want link title", got)
	}
	if got := (FrontMatter{Title: "T"}).Label(); got != "T" {
		t.Errorf("Label() = %q, want title fallback", got)
	}
}

func TestSplitPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantFM   FrontMatter
		wantBody string
	}{
		{
			name:     "complete front matter",
			input:    "---\ntitle: Intro\nlinktitle: \"Start\"\nweight: 10\n---\nHello\n",
			wantFM:   FrontMatter{Title: "Intro", LinkTitle: "Start", Weight: 10},
			wantBody: "Hello\n",
		},
		{
			name:     "missing weight defaults",
			input:    "---\ntitle: Next\n---\nBody\n",
			wantFM:   FrontMatter{Title: "Next", Weight: DefaultWeight},
			wantBody: "Body\n",
		},
		{
			name:     "horizontal rules in body stay in body",
			input:    "---\ntitle: A\n---\nabove\n---\nbelow\ntitle: not metadata\n",
			wantFM:   FrontMatter{Title: "A", Weight: DefaultWeight},
			wantBody: "above\n---\nbelow\ntitle: not metadata\n",
		},
		{
			name:     "no front matter yields empty body",
			input:    "title: Loose\njust text\n",
			wantFM:   FrontMatter{Title: "Loose", Weight: DefaultWeight},
			wantBody: "",
		},
		{
			name:     "last line without newline",
			input:    "---\ntitle: A\n---\nend",
			wantFM:   FrontMatter{Title: "A", Weight: DefaultWeight},
			wantBody: "end",
		},
		{
			name:     "empty input",
			input:    "",
			wantFM:   FrontMatter{Weight: DefaultWeight},
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, err := SplitPage(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("SplitPage() error = %v", err)
			}
			if fm != tt.wantFM {
				t.Errorf("SplitPage() front matter = %+v, want %+v", fm, tt.wantFM)
			}
			if body != tt.wantBody {
				t.Errorf("SplitPage() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestSplitPage_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk gone")
	_, _, err := SplitPage(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("SplitPage() error = %v, want wrapped %v", err, boom)
	}
}
