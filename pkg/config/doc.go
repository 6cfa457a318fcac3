/*
Package config resolves the settings of an i18n-cleaner run.

	+-----------+     +---------------+     +-----------+
	| Defaults  | --> |  Config file  | --> |   Flags   |
	+-----------+     +-------+-------+     +-----------+
	                          |
	    +------+------+-------+------+------+---------+
	    |      |      |              |      |         |
	 package  JSON   YAML          TOML    HCL    .i18n-cleanerrc
	  .json

🎯 Purpose:
- Holds the built-in react-i18next defaults
- Finds the project's config file
- Parses every supported format into one File layer
- Merges defaults, file and flags into an immutable Config

🔄 Flow:
1. Discover searches SearchPlaces in order; a package.json only counts
   when it has an "i18n-cleaner" key
2. Load picks a Parser by file name and decodes the file strictly,
   unknown keys are errors
3. ApplyFile replaces every key present in the file
4. ApplyOverrides applies flags: include replaces, exclude is appended,
   a replace pattern flag appends one rule
5. Validate rejects what the run could not use

⚠️ Errors:
Every failure is a *ConfigError carrying the file path. A config error always
aborts the run before any source file is touched.

🔍 Example:

	cfg, err := config.Resolve(ctx, config.Options{Dir: "."})
	if err != nil {
		var cerr *config.ConfigError
		if errors.As(err, &cerr) {
			fmt.Printf("fix %s: %v\n", cerr.Path, cerr.Err)
		}
		return err
	}
	cleaner, err := text.NewCleaner(cfg.CleanerOptions())
*/
package config
