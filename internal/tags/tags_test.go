package tags

import (
	"reflect"
	"testing"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"url", "https://example.com/page", []string{"#url"}},
		{"email-ish", "user@example.com", []string{"#email"}},
		{"short hex color", "#fff", []string{"#color"}},
		{"long hex color", "#AABB00", []string{"#color"}},
		{"not a color", "#ggg", nil},
		{"code shape", "fn main() { let x = 1; }", []string{"#code"}},
		{"plain text", "nothing here", nil},
		{"spaced at sign", "a @ b.com", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Detect(c.content)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Detect(%q) = %v, want %v", c.content, got, c.want)
			}
		})
	}
}

func TestDetectMultiple(t *testing.T) {
	got := Detect("https://example.com/x@y.z")
	if !reflect.DeepEqual(got, []string{"#url", "#email"}) {
		t.Fatalf("Detect = %v", got)
	}
}

func TestIsFilePath(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"/home/user/file.txt", true},
		{`C:\Users\x\doc.pdf`, true},
		{"D:/games/save.dat", true},
		{"//server/share", false},
		{"relative/path", false},
		{"/multi\n/line", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsFilePath(c.in); got != c.want {
			t.Fatalf("IsFilePath(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
