package lang

import "testing"

func TestGuess(t *testing.T) {
	cases := []struct {
		name string
		code string
		want string
	}{
		{"shebang", "#!/bin/bash\necho hi", "shell"},
		{"php open tag", "<?php echo 1;", "php"},
		{"yaml front matter", "---\ntitle: post\n---\nbody", "yaml"},
		{"sql select", "SELECT id FROM users WHERE id = 1;", "sql"},
		{"sql create", "CREATE TABLE t (id INT);", "sql"},
		{"js import", "import fs from 'fs'\nfs.readFileSync('x')", "javascript"},
		{"ts annotated import", "import x from 'y'\nconst n: number = 1", "typescript"},
		{"rust fn", "fn main() {\n    let mut x = 1;\n}", "rust"},
		{"go package", "package main\n\nfunc main() {\n}", "go"},
		{"python def", "def greet(name):\n    return name", "python"},
		{"python import", "import os\n\nprint(os.getcwd())", "python"},
		{"c include", "#include <stdio.h>\nint main(void) { return 0; }", "c"},
		{"cpp namespace", "std::cout << value;", "cpp"},
		{"java class", "public class Main { }", "java"},
		{"css rule", "body { color: red; }", "css"},
		{"html doctype", "<!DOCTYPE html>\n<html></html>", "html"},
		{"json fallback", "[1, 2, 3]", "json"},
		{"plain prose", "nothing to see here", ""},
		{"empty", "", ""},
		{"whitespace", "   \n ", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Guess(c.code); got != c.want {
				t.Fatalf("Guess(%q) = %q, want %q", c.code, got, c.want)
			}
		})
	}
}

// The guesser is shared between the classifier's final rule and the code
// extractor; repeated calls must agree.
func TestGuessDeterministic(t *testing.T) {
	code := "fn main() { let mut x = 1; }"
	first := Guess(code)
	for i := 0; i < 3; i++ {
		if got := Guess(code); got != first {
			t.Fatalf("Guess flapped: %q then %q", first, got)
		}
	}
}
