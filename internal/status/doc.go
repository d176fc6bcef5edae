// Package status represents values for the shared state's status.
//
// The value is split into 4 sections, flags, fate, state, and lock, as
// follows, starting from the right:
// - The lock section takes 4 bits.
// - The state section takes 2 bits.
// - The fate section takes 2 bits.
// - The flags section takes 4 bits.
//
// Description of the sections:
//
//   - The lock section.
//     = Although it's named 'lock', it doesn't use any Mutexes.
//     = The lock is implemented through atomic writing, reading, and updating
//     of the status value.
//     = The lock logic used is just a way to tell new comers(that want to
//     update the status) that: "the value is currently being updated by some
//     previous update call so wait here until it finish, then you can get
//     your chance to update the status too".
//     = The whole waiting behaviour is passed to the 'go scheduler'(through a
//     call to runtime.Gosched) to decide which goroutine should run now(and
//     hence acquire the lock first).
//     = The lock will be acquired for only a small period of time by any
//     call, because the operations done while the lock is acquired are very
//     basic(and, or, assign, compare, and conditions).
//
//   - The state section describes what the storage of the shared state holds.
//     = 3 mutually exclusive possible values, represented by 2 bits:
//
//   - Pending: no payload has been committed yet.
//
//   - HasValue: the value payload has been committed.
//
//   - HasError: the error payload has been committed, whether it's a
//     user-provided error, a broken-promise error, or a captured
//     continuation panic.
//     = The state value is written exactly once, together with transiting
//     the fate to Resolved, and never reverts.
//     = The state section is the only discriminant of the payload storage,
//     there's no second tag anywhere else.
//
//   - The fate section describes how far the one-time resolution went.
//     = 3 mutually exclusive possible values, represented by 2 bits:
//
//   - Unresolved: no resolving call has claimed the shared state yet.
//
//   - Resolving: exactly one resolving call has claimed the shared state,
//     and is currently storing the payload.
//     It's an internal fate that denotes that other resolving calls have
//     already lost the race, and that readers must keep waiting.
//
//   - Resolved: the payload and the state are committed and final.
//     = A shared state whose fate is Unresolved or Resolving, its state must
//     be Pending.
//     = A shared state whose fate is Resolved, its state must be HasValue or
//     HasError.
//
//   - The flags section records one-time events on the shared state.
//     = Retrieved: a future has been handed out for this shared state, any
//     later attempt must fail.
//     = CallbackSet: a continuation callback has been attached to this
//     shared state, at most one is ever allowed.
//     = Each flag is test-and-set exactly once, and never cleared.
package status
