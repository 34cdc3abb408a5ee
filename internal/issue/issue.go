// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidSelectorId Id = iota + 1
	InvalidOffsetId
	FileOpenFailedId
	InvalidPatternId
	InvalidDateId
	ConfigLoadFailedId
	CommandNotFoundId
	ScriptFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	slug     string      // stable name accepted by "toolbox explain"
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

// Slug is the kebab-case name of the issue.
func (i *Issue) Slug() string {
	return i.slug
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Title returns the first heading of the message without the leading '#'.
func (i *Issue) Title() string {
	for _, line := range strings.Split(string(i.mdMsg), "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return i.slug
}

// Render renders the issue as terminal Markdown. stylePath is any glamour
// style name ("dark", "light", "notty") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.extLinks) > 0 {
		var sb strings.Builder
		sb.WriteString(md)
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
		md = sb.String()
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	invalidSelectorIssue = &Issue{
		id:   InvalidSelectorId,
		slug: "invalid-selector",
		mdMsg: `
# Invalid position list!

cutr takes positions as a single number, a comma list or a range.
Positions start at 1.

## Accepted forms
~~~
$ cutr -f 2 file.tsv        # one field
$ cutr -c 1,3,5 file.txt    # characters 1, 3 and 5, in that order
$ cutr -b 2-4 file.txt      # bytes 2 through 4
~~~

## Things you can try
- Replace "0" with "1": the first position is 1
- Write ranges low to high ("2-4", not "4-2")
- Do not mix commas and dashes in one list`,
		extLinks: []HttpLink{"https://www.gnu.org/software/coreutils/manual/html_node/cut-invocation.html"},
	}

	invalidOffsetIssue = &Issue{
		id:   InvalidOffsetId,
		slug: "invalid-offset",
		mdMsg: `
# Invalid count!

headr and tailr expect a non-negative whole number.
tailr also accepts a leading "+" to start at a given position.

## Examples
~~~
$ tailr -n 5 log.txt     # last five lines
$ tailr -n +5 log.txt    # everything from the sixth line on
$ tailr -c 100 data.bin  # last hundred bytes
~~~`,
	}

	fileOpenFailedIssue = &Issue{
		id:   FileOpenFailedId,
		slug: "file-open-failed",
		mdMsg: `
# Could not open an input!

One of the paths on the command line could not be read.
The remaining inputs were still processed and the exit status is 1.

## Things you can try
- Check the spelling and that the file exists
- Check read permissions on the file and its directories
- Use "-" to read standard input explicitly`,
	}

	invalidPatternIssue = &Issue{
		id:   InvalidPatternId,
		slug: "invalid-pattern",
		mdMsg: `
# Invalid regular expression!

grepr and findr compile their patterns with Go's RE2 syntax.
Lookarounds and backreferences are not part of RE2.

## Things you can try
- Quote the pattern so the shell leaves it alone
- Use "grepr -P" for Perl-style patterns with lookarounds
- Escape literal metacharacters such as "." or "("`,
		extLinks: []HttpLink{"https://github.com/google/re2/wiki/Syntax"},
	}

	invalidDateIssue = &Issue{
		id:   InvalidDateId,
		slug: "invalid-date",
		mdMsg: `
# Invalid month or year!

calr accepts a month as 1-12 or an English month name, and a year
between 1 and 9999.

## Examples
~~~
$ calr               # this month
$ calr 2024          # the whole year
$ calr feb 2024      # one month
$ calr -y            # the whole current year
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		slug: "config-load-failed",
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.
Tools fall back to their built-in defaults when this happens.

## Things you can try
- Print the expected location:
~~~
$ toolbox config path
~~~
- Write a fresh file with every default spelled out:
~~~
$ toolbox config init
~~~
- Check field names and values against the defaults:
~~~
$ toolbox config show
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	commandNotFoundIssue = &Issue{
		id:   CommandNotFoundId,
		slug: "command-not-found",
		mdMsg: `
# Command not found!

The name given to toolbox is not one of its tools.

## Things you can try
- List the tools and their flags:
~~~
$ toolbox list
~~~
- Check the name of the symlink when using multi-call mode`,
	}

	scriptFailedIssue = &Issue{
		id:   ScriptFailedId,
		slug: "script-failed",
		mdMsg: `
# Script could not run!

"toolbox run" parses POSIX shell and runs built-in tools in process.
The script failed to parse or referenced a command that is not available.

## Things you can try
- Check the script with a regular shell first
- Drop "--no-host" to let unknown commands run from PATH`,
	}

	issues = map[Id]*Issue{
		invalidSelectorIssue.Id():  invalidSelectorIssue,
		invalidOffsetIssue.Id():    invalidOffsetIssue,
		fileOpenFailedIssue.Id():   fileOpenFailedIssue,
		invalidPatternIssue.Id():   invalidPatternIssue,
		invalidDateIssue.Id():      invalidDateIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		commandNotFoundIssue.Id():  commandNotFoundIssue,
		scriptFailedIssue.Id():     scriptFailedIssue,
	}
)

// Values returns every issue ordered by id.
func Values() []*Issue {
	all := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		all = append(all, i)
	}
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return all
}

func Get(id Id) *Issue {
	return issues[id]
}

// Lookup finds an issue by slug.
func Lookup(slug string) (*Issue, bool) {
	all := Values()
	idx := slices.IndexFunc(all, func(i *Issue) bool { return i.slug == slug })
	if idx < 0 {
		return nil, false
	}
	return all[idx], true
}
