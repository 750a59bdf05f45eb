// Package logrushook routes github.com/sirupsen/logrus entries into a
// uartlog facade.
//
//	l := logrus.New()
//	l.SetOutput(io.Discard)
//	l.AddHook(logrushook.New(facade, "APP"))
//
// Trace maps to verbose; panic and fatal map to error.
package logrushook
