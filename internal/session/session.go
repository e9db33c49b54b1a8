// Package session runs the interactive, line-oriented ledger session.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"fjacquet/moneybook/internal/fileutils"
	"fjacquet/moneybook/internal/ledger"
	"fjacquet/moneybook/internal/ledgererror"
	"fjacquet/moneybook/internal/logging"
	"fjacquet/moneybook/internal/models"
	"fjacquet/moneybook/internal/report"
	"fjacquet/moneybook/internal/store"
)

// Commands understood by the session loop.
const (
	CmdAdd            = "add"
	CmdView           = "view"
	CmdDelete         = "delete"
	CmdViewCategories = "view categories"
	CmdFind           = "find"
	CmdExit           = "exit"
)

const (
	commandPrompt  = "\nWhat do you want to do (add / view / delete / view categories / find / exit)? "
	balancePrompt  = "How much money do you have? "
	addPrompt      = "Add an expense or income record with category, description, and amount:\n"
	deletePrompt   = "Which record do you want to delete? "
	indexPrompt    = "Please specify which record to delete based on index: "
	findPrompt     = "Which category do you want to find? "
	invalidCommand = "Invalid command. Try again."
)

// LedgerStore loads and saves the ledger.
type LedgerStore interface {
	Load() (*ledger.Ledger, error)
	Save(l *ledger.Ledger) error
}

// Taxonomy is the category tree as seen by the session.
type Taxonomy interface {
	IsValid(label string) bool
	Subtree(label string) []string
	Walk() iter.Seq2[string, int]
}

// Options configures a Session.
type Options struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	Store      LedgerStore
	Categories Taxonomy
	Logger     logging.Logger
	// SaveOnEOF saves the ledger when the input ends without an exit command.
	SaveOnEOF bool
}

// Session owns the ledger for the duration of one interactive run.
type Session struct {
	in         *bufio.Reader
	out        io.Writer
	errOut     io.Writer
	store      LedgerStore
	categories Taxonomy
	logger     logging.Logger
	saveOnEOF  bool
	report     *report.ReportGenerator

	ledger *ledger.Ledger
}

// errEndOfInput signals that the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

// New creates a session. The ledger is loaded when Run starts.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Session{
		in:         bufio.NewReader(opts.In),
		out:        opts.Out,
		errOut:     opts.Err,
		store:      opts.Store,
		categories: opts.Categories,
		logger:     logger,
		saveOnEOF:  opts.SaveOnEOF,
		report:     report.NewReportGenerator(opts.Out),
	}
}

// Ledger returns the ledger of the session, or nil before Run has loaded it.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Run loads the ledger, processes commands until exit or end of input and
// saves the ledger. Command errors are reported and never end the session;
// only a failing load, save or input read is returned.
func (s *Session) Run() error {
	if err := s.open(); err != nil {
		return err
	}

	for {
		line, err := s.prompt(commandPrompt)
		if err != nil {
			return s.stop(err)
		}

		command := strings.TrimSpace(line)
		if command == CmdExit {
			return s.save()
		}
		if err := s.dispatch(command); err != nil {
			if isInputFailure(err) {
				return s.stop(err)
			}
			s.reportError(command, err)
		}
	}
}

func (s *Session) dispatch(command string) error {
	s.logger.Debug("Dispatching command", logging.Field{Key: logging.FieldCommand, Value: command})
	switch command {
	case CmdAdd:
		return s.add()
	case CmdView:
		return s.report.Ledger(s.ledger)
	case CmdDelete:
		return s.delete()
	case CmdViewCategories:
		return s.report.Categories(s.categories.Walk())
	case CmdFind:
		return s.find()
	default:
		s.errorf("%s\n", invalidCommand)
		return nil
	}
}

// open loads the ledger, or asks for an initial balance on the first run.
func (s *Session) open() error {
	l, err := s.store.Load()
	switch {
	case err == nil:
		s.ledger = l
		s.printf("Welcome back!\n")
		return nil
	case errors.Is(err, store.ErrNoLedger):
	default:
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	var initial int64
	line, err := s.prompt(balancePrompt)
	if err != nil && !errors.Is(err, errEndOfInput) {
		return err
	}
	if err == nil {
		v, parseErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if parseErr != nil {
			s.errorf("Invalid value for initial money.\nInitial money set to 0.\n")
		} else {
			initial = v
		}
	}
	s.ledger = ledger.New(initial, nil)
	s.logger.Debug("Started a new ledger", logging.Field{Key: logging.FieldBalance, Value: initial})
	return nil
}

func (s *Session) add() error {
	line, err := s.prompt(addPrompt)
	if err != nil {
		return err
	}
	rec, err := s.ledger.AddLine(line, s.categories)
	if err != nil {
		return err
	}
	s.logger.Debug("Added record",
		logging.Field{Key: logging.FieldRecordID, Value: rec.ID.String()},
		logging.Field{Key: logging.FieldCategory, Value: rec.Category},
		logging.Field{Key: logging.FieldAmount, Value: rec.Amount})
	return nil
}

func (s *Session) delete() error {
	description, err := s.prompt(deletePrompt)
	if err != nil {
		return err
	}
	description = strings.TrimSpace(description)

	rec, err := s.ledger.DeleteByDescription(description)
	var ambiguous *ledger.AmbiguousError
	if errors.As(err, &ambiguous) {
		rec, err = s.disambiguate(ambiguous)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("Deleted record",
		logging.Field{Key: logging.FieldRecordID, Value: rec.ID.String()},
		logging.Field{Key: logging.FieldDescription, Value: rec.Description})
	return nil
}

func (s *Session) disambiguate(ambiguous *ledger.AmbiguousError) (rec models.Record, err error) {
	s.printf("More than 1 items with description \"%s\" found.\n", ambiguous.Description)
	s.printf("Please specify which record to delete based on index:\n")
	if err := s.report.Matches(ambiguous.Matches); err != nil {
		return rec, err
	}
	line, err := s.prompt(indexPrompt)
	if err != nil {
		return rec, err
	}
	value := strings.TrimSpace(line)
	choice, convErr := strconv.Atoi(value)
	if convErr != nil {
		return rec, &ledgererror.IndexError{Value: value, Max: len(ambiguous.Matches)}
	}
	return s.ledger.DeleteMatch(ambiguous.Matches, choice)
}

func (s *Session) find() error {
	label, err := s.prompt(findPrompt)
	if err != nil {
		return err
	}
	label = strings.TrimSpace(label)
	labels := s.categories.Subtree(label)
	records, total := s.ledger.FindByCategories(labels)
	s.logger.Debug("Found records",
		logging.Field{Key: logging.FieldCategory, Value: label},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return s.report.Found(records, total)
}

// errReadInput marks a failure of the input stream itself.
var errReadInput = errors.New("failed to read input")

func isInputFailure(err error) bool {
	return errors.Is(err, errEndOfInput) || errors.Is(err, errReadInput)
}

// stop ends the session when the input can no longer be read. The ledger is
// handled as at end of input; a read failure is still returned.
func (s *Session) stop(err error) error {
	saveErr := s.endOfInput()
	if errors.Is(err, errEndOfInput) {
		return saveErr
	}
	return errors.Join(err, saveErr)
}

func (s *Session) endOfInput() error {
	if !s.saveOnEOF {
		s.logger.Debug("Input ended, ledger not saved")
		return nil
	}
	return s.save()
}

func (s *Session) save() error {
	if err := s.store.Save(s.ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

func (s *Session) prompt(text string) (string, error) {
	s.printf("%s", text)
	line, err := fileutils.ReadLine(s.in)
	if errors.Is(err, io.EOF) {
		return "", errEndOfInput
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", errReadInput, err)
	}
	return line, nil
}

// reportError turns a failed command into a message for the user.
func (s *Session) reportError(command string, err error) {
	s.logger.WithError(err).Debug("Command failed", logging.Field{Key: logging.FieldCommand, Value: command})

	var indexErr *ledgererror.IndexError
	switch {
	case errors.Is(err, ledgererror.ErrInvalidFormat):
		s.errorf("The format of the record is invalid (must be '[category] [description] [amount]').\nFailed to add a record.\n")
	case errors.Is(err, ledgererror.ErrInvalidCategory):
		s.errorf("The specified category is not in the category list.\n" +
			"You can check the category list by command \"view categories\".\nFailed to add a record.\n")
	case errors.Is(err, ledgererror.ErrInvalidAmount):
		s.errorf("Invalid value for amount (must be int).\nFailed to add a record.\n")
	case errors.Is(err, ledgererror.ErrNotFound):
		var inputErr *ledgererror.InputError
		if errors.As(err, &inputErr) && command == CmdDelete {
			s.errorf("No record with description \"%s\" found.\n", inputErr.Input)
		} else {
			s.errorf("The specified record does not exist.\n")
		}
	case errors.As(err, &indexErr):
		if _, convErr := strconv.Atoi(indexErr.Value); convErr != nil {
			s.errorf("Invalid value for index.\n")
		} else {
			s.errorf("The specified record does not exist.\n")
		}
	default:
		s.errorf("%v\n", err)
	}
}

func (s *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.logger.WithError(err).Warn("Failed to write output")
	}
}

func (s *Session) errorf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.errOut, format, args...); err != nil {
		s.logger.WithError(err).Warn("Failed to write error output")
	}
}
