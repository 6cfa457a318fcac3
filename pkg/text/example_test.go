package text_test

import (
	"fmt"

	"github.com/walteh/i18n-cleaner/pkg/text"
)

func ExampleSubstitute() {
	// Unwrap every t("...") call, keeping the original quotes
	out := text.Substitute(`const label = t("Hello") + t('World');`, []text.ReplacePattern{
		{Pattern: "t", Replacement: text.DefaultReplacement},
	})

	fmt.Println(out)

	// Output:
	// const label = "Hello" + 'World';
}

func ExampleRemoveLines() {
	out, err := text.RemoveLines("import a from 'a';\n  import { useTranslation } from 'react-i18next';\nconst x = 1;\n", []string{
		`react-i18next`,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(out)

	// Output:
	// import a from 'a';
	// const x = 1;
}

func ExampleCleaner_Clean() {
	cleaner, err := text.NewCleaner(text.CleanerOptions{
		RemoveImports:      []string{`^import \{ useTranslation \} from ['"]react-i18next['"];?$`},
		RemoveDeclarations: []string{`^const \{ t \} = useTranslation\(\);?$`},
		ReplacePatterns:    []text.ReplacePattern{{Pattern: "t", Replacement: text.DefaultReplacement}},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result := cleaner.Clean("import { useTranslation } from 'react-i18next';\nconst { t } = useTranslation();\nconst label = t(\"Hello\");\n")

	fmt.Print(result.Content)
	fmt.Printf("imports: %d, declarations: %d, calls: %d\n", result.RemovedImports, result.RemovedDeclarations, result.Replacements)

	// Output:
	// const label = "Hello";
	// imports: 1, declarations: 1, calls: 1
}
