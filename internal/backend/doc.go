// Package backend encapsulates per-tool knowledge for the supported search
// backends: ag (the_silver_searcher), rg (ripgrep), and grep.
//
// Each backend differs in three ways that matter to the pipeline:
//   - Flag vocabulary for excluding directories and file patterns
//   - Default arguments needed to force plain path:line[:column]:text output
//     (no color, no grouped headings)
//   - Whether output lines carry a column field at all (grep's do not)
//
// # Basic Usage
//
//	b, err := backend.New(backend.Rg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	args := backend.BuildArgs(b, nil,
//	    []string{"node_modules"},    // ignored directories
//	    []string{"*.min.js"},        // ignored file patterns
//	    `Host \Kmyproxy`)            // compiled pattern, always last
//
// # Exclude Translation
//
// The same ignore lists translate per backend:
//
//	ag:   --ignore-dir node_modules     --ignore *.min.js
//	rg:   -g !node_modules/             -g !*.min.js
//	grep: --exclude-dir node_modules    --exclude *.min.js
//
// rg directory globs get a trailing "/" appended when missing so the glob
// matches the directory rather than a same-named file.
package backend
