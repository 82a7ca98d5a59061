// Package action implements the three relay actions on top of device.Operator.
//
// Each handler returns a Result and never panics:
//   - PlugOn powers on one registered outlet.
//   - DaughterSignal powers on the daughter's outlet, waits SignalDelay, then
//     powers on the bulb and sets its colour. It stops at the first failure.
//   - AllOff powers off every registered device in registry order. It always
//     attempts every device and reports all failures together.
//
// The wait in DaughterSignal goes through a Delayer so tests can run it
// instantly. Once started, the wait is never cancelled.
package action
