// Package script loads user scripts and runs them inside a sandboxed Lua
// state.
//
// A script is a Lua chunk that returns either its transformation function
// or a table describing it:
//
//	return {
//	    regexp = "Pattern to edit",     -- prompt label, or regexp("\\d+", "g")
//	    params = { "prefix" },          -- optional, defaults to the function's own parameters
//	    script = function(selections, prefix)
//	        for _, sel in ipairs(selections) do
//	            sel:replace(prefix .. sel.text)
//	        end
//	    end,
//	}
//
// # Registry
//
// The Registry compiles script files keyed by path. Load always discards the
// cached entry and re-reads the file, so edits are picked up on the next run.
// A Watcher can additionally invalidate entries as files change on disk.
//
// # State
//
// Every run gets a fresh State with only the base, table, string and math
// libraries. dofile, loadfile, load and loadstring are removed and require is
// limited to the built-in safe modules.
//
// # Bridge
//
// The Bridge exposes selection records to Lua as tables. Records and matches
// carry replace and select functions that work with both call styles:
//
//	sel.replace("text")
//	sel:replace("text")
package script
