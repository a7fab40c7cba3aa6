/*
Package ignorewalk walks a directory tree while honoring gitignore-style
exclusion rules.

A Walker yields the entries that survive every applicable filter: hidden-entry
exclusion, size and depth bounds, explicit override patterns, ignore files
layered from the global git excludes file down to the deepest directory, and an
optional caller-supplied predicate. Directories that are excluded are pruned
without ever being opened, so a negation pattern inside an excluded subtree can
never re-include anything below it. This mirrors git's own behavior and is
intentional.

Basic flow:

	w, err := ignorewalk.New(root,
		ignorewalk.WithMaxDepth(3),
		ignorewalk.WithOverrides([]string{"*.go", "!*_test.go"}),
	)
	if err != nil {
		return err
	}
	for w.Next() {
		fmt.Println(w.Entry().Rel)
	}
	if err := w.Err(); err != nil {
		return err
	}

A Walker is single-pass and single-consumer: iterate it once, from one
goroutine, and construct a new one to traverse again.
*/
package ignorewalk
