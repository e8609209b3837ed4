// screen-demo lays out a sample report: console text, a wrapped row of
// titled text boxes, a table and a nested table.
//
// Run: GOWORK=off go run ./cmd/screen-demo/ -width 100
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/wesen/textscreen/internal/config"
	"github.com/wesen/textscreen/internal/log"
	"github.com/wesen/textscreen/pkg/box"
	"github.com/wesen/textscreen/pkg/screen"
	"github.com/wesen/textscreen/pkg/termwidth"
)

var demoStyles = map[string]config.StyleSpec{
	"title": {Foreground: "#00ffcc", Bold: true},
	"body":  {Foreground: "#c0c0c0"},
}

func main() {
	if err := run(parseFlags(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs, out io.Writer) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}
	if err := godotenv.Load(args.env); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", args.env, err)
	}

	settings, err := config.Load(args.config)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(settings); err != nil {
		return err
	}
	if args.width > 0 {
		settings.Width = args.width
	}
	if args.style && len(settings.Styles) == 0 {
		settings.Styles = demoStyles
	}
	if settings.Width > 0 {
		termwidth.Set(settings.Width)
	}
	log.Debug("settings: %+v", *settings)

	opts, err := settings.Options()
	if err != nil {
		return err
	}
	s := screen.New(settings.Title, out, opts...)
	return box.Use(s, report)
}

func text(s *screen.Screen, title string, lines ...string) error {
	sec, err := s.DrawText(title)
	if err != nil {
		return err
	}
	return box.Use(sec, func(b *box.Titled) error {
		for _, li := range lines {
			if err := b.Println(li); err != nil {
				return err
			}
		}
		return nil
	})
}

func report(s *screen.Screen) error {
	if err := s.Println("Some description goes here."); err != nil {
		return err
	}

	sections := []struct {
		title string
		lines []string
	}{
		{"My First Box", []string{"This is a text box."}},
		{"My Second Box", []string{
			"This is another text box.",
			"You can have a second line",
			"and it stays in the second box.",
		}},
		{"My Third Box", []string{
			"This box is to the right of the second box.",
			"Unless you have a narrow screen --",
			"then the box wraps to the next row",
		}},
		{"My Fourth Box", []string{
			"This box stretches to fit the row",
			"because we call SoftBreak()",
		}},
	}
	for _, sec := range sections {
		if err := text(s, sec.title, sec.lines...); err != nil {
			return err
		}
	}

	// Justify the row so the last box sits flush right.
	if err := s.SoftBreak(); err != nil {
		return err
	}

	if err := text(s, "My Fifth Box", "Notice the rows are justified."); err != nil {
		return err
	}
	if err := text(s, "My Sixth Box", "You can also have tables."); err != nil {
		return err
	}
	if err := people(s); err != nil {
		return err
	}
	return nested(s)
}

func people(s *screen.Screen) error {
	tbl, err := s.DrawTable("My First Table", "rll")
	if err != nil {
		return err
	}
	return box.Use(tbl, func(t *box.Titled) error {
		rows := [][]any{
			{"#", "First Name", "Last Name"},
			nil,
			{1, "John", "Doe"},
			{10, "Jane", "Doe"},
			{100, "John", "Public"},
		}
		for _, row := range rows {
			var err error
			if row == nil {
				err = t.HRule("")
			} else {
				err = t.Println(row...)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func nested(s *screen.Screen) error {
	sec, err := s.DrawText("My Eighth Box")
	if err != nil {
		return err
	}
	return box.Use(sec, func(b *box.Titled) error {
		for _, li := range []string{"You can also nest boxes.", "Below is a table box.", ""} {
			if err := b.Println(li); err != nil {
				return err
			}
		}
		tbl, err := box.DrawTable(b, "ll")
		if err != nil {
			return err
		}
		return box.Use(tbl, func(t *box.Table) error {
			for _, row := range [][2]string{
				{"Name:", "John Q. Public"},
				{"Tel:", "+1 111 555 3333"},
				{"Email:", "nobody@nowhere.com"},
			} {
				if err := t.Println(row[0], row[1]); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
