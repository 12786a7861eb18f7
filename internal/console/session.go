package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"permit/internal/domain"
	"permit/internal/service"
)

// Session drives the interactive quoting loop: it prompts for a selection,
// prices it, prints a receipt, and repeats until input is exhausted.
type Session struct {
	scanner  *bufio.Scanner
	out      io.Writer
	receipts *service.ReceiptService
	logger   *zap.Logger
}

// NewSession creates a session reading selections from in and writing
// prompts and receipts to out.
func NewSession(in io.Reader, out io.Writer, receipts *service.ReceiptService, logger *zap.Logger) *Session {
	return &Session{
		scanner:  bufio.NewScanner(in),
		out:      out,
		receipts: receipts,
		logger:   logger,
	}
}

// Run loops indefinitely. Invalid input is reported and the loop continues;
// only end of input or a read failure ends the session. Each iteration is
// atomic: either a full receipt is printed, or nothing is.
func (s *Session) Run() error {
	for {
		err := s.runOnce()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, domain.ErrInvalidSelection):
			fmt.Fprintf(s.out, "ERROR: %s\nPlease try again.\n", err)
			s.logger.Debug("selection rejected", zap.Error(err))
		default:
			return err
		}
	}
}

func (s *Session) runOnce() error {
	permitText, err := s.prompt("Permit type (RESIDENT/COMMUTER): ")
	if err != nil {
		return err
	}
	permit, err := domain.ParsePermitType(permitText)
	if err != nil {
		return err
	}

	vehicleText, err := s.prompt("Vehicle type (CAR/SUV/MOTORCYCLE): ")
	if err != nil {
		return err
	}
	vehicle, err := domain.ParseVehicleType(vehicleText)
	if err != nil {
		return err
	}

	carpoolText, err := s.prompt("Carpool? (Y/N): ")
	if err != nil {
		return err
	}
	carpool := strings.EqualFold(strings.TrimSpace(carpoolText), "y")

	monthsText, err := s.prompt("Months (1-12): ")
	if err != nil {
		return err
	}
	months, err := parseMonths(monthsText)
	if err != nil {
		return err
	}

	sel, err := domain.NewSelection(permit, vehicle, carpool, months)
	if err != nil {
		return err
	}

	receipt := s.receipts.Generate(sel)
	fmt.Fprint(s.out, s.receipts.FormatReceipt(receipt))
	s.logger.Debug("receipt generated",
		zap.String("receipt_id", receipt.ID),
		zap.String("permit_type", string(receipt.PermitType)),
		zap.String("total", receipt.Total.StringFixed(2)),
	)
	return nil
}

// prompt writes the prompt text and reads one input line. It returns io.EOF
// when input is exhausted.
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func parseMonths(text string) (int, error) {
	months, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: months must be a whole number, got %q", domain.ErrInvalidSelection, text)
	}
	return months, nil
}
