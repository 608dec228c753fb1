// Package bar renders a single line progress bar that is redrawn in place.
//
// # Usage
//
//	b, err := bar.New("{spinner} {bar} {percent}%", bar.Options{Size: bar.Int(40)}, func(b *bar.Bar) {
//	    fmt.Println("done")
//	})
//	if err != nil {
//	    return err
//	}
//	defer b.Terminate()
//
//	for _, job := range jobs {
//	    run(job)
//	    b.Tick()
//	}
//
// # Tokens
//
// Format templates may contain the following tokens, matched case
// insensitively. Every occurrence of a token is replaced.
//
//	{bar}      the bar itself (required at least once)
//	{current}  completed ticks
//	{size}     total ticks
//	{percent}  completion, 0 to 100
//	{spinner}  current animation frame
//
// # Interruptions
//
// Interrupt prints a line next to the bar without displacing it. Each
// interruption pushes the bar's home row one line further from where the
// cursor is parked; the offset is replayed on every interruption and on
// Terminate so the cursor always comes back to the bar.
package bar
