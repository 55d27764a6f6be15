package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/flexprice/shipdiscount/internal/api/dto"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
)

const ignoredLine = "Ignored"

// ProcessReader prices every non-blank line of r. Lines that are malformed,
// fail validation or have no shipping plan are echoed with an Ignored marker
// and leave the history untouched.
func (s *transactionProcessor) ProcessReader(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := s.processLine(ctx, line)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s %s\n", line, result); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to write transaction result").
				Mark(ierr.ErrSystem)
		}
	}

	if err := scanner.Err(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read transactions").
			Mark(ierr.ErrSystem)
	}

	if err := out.Flush(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to write transaction results").
			Mark(ierr.ErrSystem)
	}
	return nil
}

// processLine returns the result column of line. Only errors that are not
// caused by the line itself are returned.
func (s *transactionProcessor) processLine(ctx context.Context, line string) (string, error) {
	req, err := dto.ParseTransactionLine(line)
	if err != nil {
		s.logger.Debugw("ignoring malformed transaction line", "line", line, "error", err)
		return ignoredLine, nil
	}

	price, err := s.ProcessTransaction(ctx, *req)
	if err != nil {
		if ierr.IsValidation(err) || ierr.IsNotFound(err) {
			s.logger.Debugw("ignoring transaction",
				"line", line,
				"error", err,
				"hint", strings.Join(ierr.GetHints(err), "; "),
			)
			return ignoredLine, nil
		}
		return "", err
	}

	return dto.FormatShippingPrice(price), nil
}
