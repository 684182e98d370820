package theme

// DefaultName is the theme used when the configured one is unknown.
const DefaultName = "tokyonight"

func init() {
	RegisterTheme("tokyonight", Palette{
		PrimaryColor:             c("#82aaff", "#2e7de9"),
		SecondaryColor:           c("#c099ff", "#9854f1"),
		AccentColor:              c("#ff966c", "#b15c00"),
		ErrorColor:               c("#ff757f", "#f52a65"),
		WarningColor:             c("#ffc777", "#8c6c3e"),
		SuccessColor:             c("#c3e88d", "#587539"),
		InfoColor:                c("#7dcfff", "#0db9d7"),
		TextColor:                c("#c8d3f5", "#3760bf"),
		TextMutedColor:           c("#636da6", "#848cb5"),
		TextEmphasizedColor:      c("#ffc777", "#8c6c3e"),
		BackgroundColor:          c("#222436", "#e1e2e7"),
		BackgroundSecondaryColor: c("#2f334d", "#c8c9ce"),
		BackgroundDark:           c("#1e2030", "#d5d6db"),
		BorderNormalColor:        c("#3b4261", "#a8aecb"),
		BorderFocusedColor:       c("#82aaff", "#2e7de9"),
		BorderDimColor:           c("#292e42", "#c8c9ce"),
	})

	// https://www.nordtheme.com/docs/colors-and-palettes
	RegisterTheme("nord", Palette{
		PrimaryColor:             c("#88C0D0", "#5E81AC"),
		SecondaryColor:           c("#81A1C1", "#5E81AC"),
		AccentColor:              c("#8FBCBB", "#4C566A"),
		ErrorColor:               c("#BF616A", "#BF616A"),
		WarningColor:             c("#EBCB8B", "#D08770"),
		SuccessColor:             c("#A3BE8C", "#A3BE8C"),
		InfoColor:                c("#B48EAD", "#B48EAD"),
		TextColor:                c("#ECEFF4", "#2E3440"),
		TextMutedColor:           c("#4C566A", "#4C566A"),
		TextEmphasizedColor:      c("#E5E9F0", "#3B4252"),
		BackgroundColor:          c("#2E3440", "#ECEFF4"),
		BackgroundSecondaryColor: c("#3B4252", "#E5E9F0"),
		BackgroundDark:           c("#242933", "#D8DEE9"),
		BorderNormalColor:        c("#434C5E", "#D8DEE9"),
		BorderFocusedColor:       c("#88C0D0", "#5E81AC"),
		BorderDimColor:           c("#3B4252", "#E5E9F0"),
	})

	RegisterTheme("dracula", Palette{
		PrimaryColor:             c("#bd93f9", "#644ac9"),
		SecondaryColor:           c("#ff79c6", "#a3144d"),
		AccentColor:              c("#8be9fd", "#036a96"),
		ErrorColor:               c("#ff5555", "#cb3a2a"),
		WarningColor:             c("#f1fa8c", "#846e15"),
		SuccessColor:             c("#50fa7b", "#14710a"),
		InfoColor:                c("#8be9fd", "#036a96"),
		TextColor:                c("#f8f8f2", "#1f1f1f"),
		TextMutedColor:           c("#6272a4", "#635d97"),
		TextEmphasizedColor:      c("#ffb86c", "#a34d14"),
		BackgroundColor:          c("#282a36", "#fffbeb"),
		BackgroundSecondaryColor: c("#44475a", "#efeddc"),
		BackgroundDark:           c("#21222c", "#ecead5"),
		BorderNormalColor:        c("#44475a", "#cfcfde"),
		BorderFocusedColor:       c("#bd93f9", "#644ac9"),
		BorderDimColor:           c("#343746", "#dedccf"),
	})

	RegisterTheme("gruvbox", Palette{
		PrimaryColor:             c("#83a598", "#076678"),
		SecondaryColor:           c("#d3869b", "#8f3f71"),
		AccentColor:              c("#fe8019", "#af3a03"),
		ErrorColor:               c("#fb4934", "#9d0006"),
		WarningColor:             c("#fabd2f", "#b57614"),
		SuccessColor:             c("#b8bb26", "#79740e"),
		InfoColor:                c("#8ec07c", "#427b58"),
		TextColor:                c("#ebdbb2", "#3c3836"),
		TextMutedColor:           c("#928374", "#7c6f64"),
		TextEmphasizedColor:      c("#fbf1c7", "#282828"),
		BackgroundColor:          c("#282828", "#fbf1c7"),
		BackgroundSecondaryColor: c("#3c3836", "#ebdbb2"),
		BackgroundDark:           c("#1d2021", "#f2e5bc"),
		BorderNormalColor:        c("#504945", "#d5c4a1"),
		BorderFocusedColor:       c("#83a598", "#076678"),
		BorderDimColor:           c("#3c3836", "#ebdbb2"),
	})
}
