/*
Package operation runs the cleaner over a project's files.

	+-------------+
	|   Collect   |
	| (globs ->   |
	|  file list) |
	+------+------+
	       |
	+------+------+
	|    Clean    |
	| (per file,  |
	|  bounded)   |
	+------+------+
	       |
	+------+------+
	|   Summary   |
	+-------------+

🎯 Purpose:
- Expands include globs relative to the project root and drops excluded paths
- Runs the compiled text.Cleaner over each file with a bounded worker pool
- Records one status.FileInfo per attempted file and totals them

🔄 Flow:
1. CollectFiles returns the ordered, deduplicated file list
2. CleanOperation reads each file through status.FileManager
3. Unchanged files are left alone; changed files are backed up (optional)
   and written atomically, or reported as a diff in a dry run
4. A failing file is recorded and the run moves on

🤝 Interfaces:
- Cleaner: the per-file rewrite pipeline from package text
- status.FileManager: all file I/O
- status.StatusReporter: progress and per-file tracking
- Reporter: user-facing lines and diffs

🔍 Example:

	files, err := operation.CollectFiles(ctx, root, cfg.Include, cfg.Exclude)
	summary, err := operation.Clean(ctx, operation.Options{
		Files:     files,
		Cleaner:   cleaner,
		FileMgr:   mgr,
		StatusMgr: mgr,
	})
*/
package operation
