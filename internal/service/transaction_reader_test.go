package service

import (
	"bytes"
	"context"
	"strings"

	"github.com/flexprice/shipdiscount/internal/api/dto"
	"github.com/flexprice/shipdiscount/internal/logger"
	"go.uber.org/zap/zaptest/observer"
)

const readerInput = `2015-02-01 S MR
2015-02-02 S MR
2015-02-03 L LP
2015-02-05 S LP
2015-02-06 S MR
2015-02-06 L LP
2015-02-07 L MR
2015-02-08 M MR
2015-02-09 L LP
2015-02-10 L LP
2015-02-10 S MR
2015-02-10 S MR
2015-02-11 L LP
2015-02-12 M MR
2015-02-13 M LP
2015-02-15 S MR
2015-02-17 L LP
2015-02-17 S MR
2015-02-24 L LP
2015-02-29 CUSPS
2015-03-01 S MR
`

const readerOutput = `2015-02-01 S MR 1.50 0.50
2015-02-02 S MR 1.50 0.50
2015-02-03 L LP 6.90 -
2015-02-05 S LP 1.50 -
2015-02-06 S MR 1.50 0.50
2015-02-06 L LP 6.90 -
2015-02-07 L MR 4.00 -
2015-02-08 M MR 3.00 -
2015-02-09 L LP 0.00 6.90
2015-02-10 L LP 6.90 -
2015-02-10 S MR 1.50 0.50
2015-02-10 S MR 1.50 0.50
2015-02-11 L LP 6.90 -
2015-02-12 M MR 3.00 -
2015-02-13 M LP 4.90 -
2015-02-15 S MR 1.50 0.50
2015-02-17 L LP 6.90 -
2015-02-17 S MR 1.90 0.10
2015-02-24 L LP 6.90 -
2015-02-29 CUSPS Ignored
2015-03-01 S MR 1.50 0.50
`

func (s *TransactionProcessorSuite) TestProcessReader() {
	var out bytes.Buffer
	s.Require().NoError(s.processor.ProcessReader(s.GetContext(), strings.NewReader(readerInput), &out))
	s.Equal(readerOutput, out.String())

	history, err := s.processor.History(s.GetContext())
	s.Require().NoError(err)
	s.Len(history, 20, "the ignored line is not recorded")
}

func (s *TransactionProcessorSuite) TestProcessReader_IgnoredLines() {
	input := "\n2015-02-01 S UPS\n2015-02-01 XL LP\n2015-02-30 S LP\n  2015-02-01   S   LP  \n"

	var out bytes.Buffer
	s.Require().NoError(s.processor.ProcessReader(s.GetContext(), strings.NewReader(input), &out))
	s.Equal("2015-02-01 S UPS Ignored\n2015-02-01 XL LP Ignored\n2015-02-30 S LP Ignored\n2015-02-01   S   LP 1.50 -\n", out.String())
}

func (s *TransactionProcessorSuite) TestProcessReader_LogsHintOfIgnoredLine() {
	cfg := s.GetConfig()
	cfg.Shipping.Categories.Carrier = append(cfg.Shipping.Categories.Carrier, "DHL")
	params, err := NewServiceParams(cfg, s.GetLogger(), s.GetCache(), s.GetPublisher())
	s.Require().NoError(err)

	core, logs := observer.New(logger.TraceLevel)
	params.Logger = logger.NewWithCore(core)
	processor := NewTransactionProcessor(params)

	var out bytes.Buffer
	s.Require().NoError(processor.ProcessReader(s.GetContext(), strings.NewReader("2015-02-01 S DHL\n"), &out))
	s.Equal("2015-02-01 S DHL Ignored\n", out.String())

	ignored := logs.FilterMessage("ignoring transaction").All()
	s.Require().Len(ignored, 1)
	s.Contains(ignored[0].ContextMap()["hint"], "Shipping plan for DHL S was not found")
}

func (s *TransactionProcessorSuite) TestProcessReader_CancelledContext() {
	ctx, cancel := context.WithCancel(s.GetContext())
	cancel()

	var out bytes.Buffer
	err := s.processor.ProcessReader(ctx, strings.NewReader(readerInput), &out)
	s.ErrorIs(err, context.Canceled)
	s.Empty(out.String())
}

func (s *TransactionProcessorSuite) TestProcessReader_MatchesProcessTransaction() {
	line := "2015-02-01 S MR"
	req, err := dto.ParseTransactionLine(line)
	s.Require().NoError(err)

	price, err := s.newProcessor(s.GetConfig()).ProcessTransaction(s.GetContext(), *req)
	s.Require().NoError(err)

	var out bytes.Buffer
	s.Require().NoError(s.processor.ProcessReader(s.GetContext(), strings.NewReader(line), &out))
	s.Equal(line+" "+dto.FormatShippingPrice(price)+"\n", out.String())
}
