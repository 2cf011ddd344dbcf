package rng

// Default is the process-wide generator, seeded with 0 at package init and
// never reset.
//
// Default is NOT safe for concurrent use. Goroutines calling it (directly or
// through Uint32, Uint64 and Float32 below) without their own locking race on
// its state. Code that runs on more than one goroutine should hold its own
// MSWS, for example one obtained from Default.NewSeeded during setup.
var Default = New(0)

// Uint32 draws from Default.
func Uint32() uint32 { return Default.Uint32() }

// Uint64 draws from Default.
func Uint64() uint64 { return Default.Uint64() }

// Float32 draws from Default.
func Float32() float32 { return Default.Float32() }
