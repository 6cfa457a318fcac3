/*
Package status owns every touch of a source file and reports what happened
to it.

	            +-------------+
	            |   Manager   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Reports |
	| (decode,  |           | (lines, |
	|  backup,  |           |  diffs, |
	|  rename)  |           | totals) |
	+-----------+           +---------+

🎯 Purpose:
- Reads source files and decodes them from the configured charset
- Writes results through a temp file and a rename
- Copies the original bytes to <file>.bak before a rewrite when asked
- Tracks the outcome of every file and logs progress and totals

⚡ Key Responsibilities:
- FileManager: ReadFile, WriteFileAtomic, BackupFile
- StatusReporter: TrackFile, progress and summary
- FileFormatter: message text for progress, per-file and summary lines
- Console: optional user facing sink for progress, set through WithConsole
- Diff: the dry run view of a pending rewrite

⚠️ Errors:
Every I/O failure is a *FileError naming the step (read, decode, encode,
write, backup) and the file. Callers record it against the file and go on
with the next one.

🔤 Encodings:
UTF-8 passes bytes through unchanged, so invalid sequences survive a rewrite.
Any other WHATWG label (gbk, gb18030, shift_jis, windows-1252, ...) is
decoded on read and strictly re-encoded on write.

🔍 Example:

	enc, err := status.LookupEncoding("gbk")
	if err != nil {
		return err
	}
	mgr := status.New(root, zerolog.Ctx(ctx), status.WithEncoding(enc))

	content, err := mgr.ReadFile(ctx, "src/App.tsx")
	if err != nil {
		return err
	}
	if _, err := mgr.BackupFile(ctx, "src/App.tsx"); err != nil {
		return err
	}
	return mgr.WriteFileAtomic(ctx, "src/App.tsx", cleaned)
*/
package status
