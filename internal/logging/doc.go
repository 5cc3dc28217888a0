// Package logging provides structured logging for cardform.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent unless a level is given through configuration or the
// CARDFORM_LOG_LEVEL environment variable.
//
// # Card Data
//
// Card values are never logged. Form helpers record only field names,
// message categories and counts:
//
//	logging.LogTransition("blur", card.CVC, form.Errors().Get(card.CVC))
//	logging.LogSubmit(ok, form.Errors())
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeWith(logging.Options{Level: "debug", File: "/tmp/cardform.log"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// While the interactive form owns the terminal, point File at a file;
// otherwise output goes to stderr.
package logging
