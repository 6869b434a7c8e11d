// Package runner executes a script against the editor's selections.
//
// A run goes through these steps, stopping at the first error:
//
//  1. Recompile the script file and evaluate it in a fresh sandbox.
//  2. Build selection records from the editor state.
//  3. Resolve the script's pattern, prompting for one if it asks to, and
//     attach matches to every record.
//  4. Prompt for the script's extra parameters, one at a time.
//  5. Call the transformation. Its replace calls stage edits in one batch.
//  6. Apply the batch to the editor in a single call.
//  7. When a pattern was used, move the selections to the selected matches.
//
// Nothing is applied when any step fails, including a cancelled prompt or a
// script error.
package runner
