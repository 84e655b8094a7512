package scheduler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"AstroSentinel/internal/dashboard"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/notifier"
)

const helpText = "Available commands:\n" +
	"• /report SYMBOL [YYYY-MM-DD] [intraday|weekly|monthly]\n" +
	"• /transits [YYYY-MM-DD]\n" +
	"• /history [N]\n" +
	"• /digest"

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	today := s.now().Format(model.DateLayout)

	switch strings.ToLower(fields[0]) {
	case "/report":
		if len(fields) < 2 {
			return "usage: /report SYMBOL [YYYY-MM-DD] [intraday|weekly|monthly]"
		}
		req := dashboard.Request{Symbol: fields[1], Date: argOr(fields, 2, today), Timeframe: argOr(fields, 3, s.Timeframe.String())}
		rep, err := s.Service.Generate(ctx, req)
		if err != nil {
			return replyError(err)
		}
		return notifier.FormatReport(rep)
	case "/transits":
		table, err := s.Service.Transits(argOr(fields, 1, today))
		if err != nil {
			return replyError(err)
		}
		return notifier.FormatTransits(table)
	case "/history":
		limit := 10
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				limit = n
			}
		}
		entries, err := s.Service.History(limit)
		if err != nil {
			return replyError(err)
		}
		return notifier.FormatHistory(entries)
	case "/digest":
		if msg := s.digest(); msg == "" {
			return "digest produced no reports"
		}
		// digest already delivered through the sender
		return ""
	default:
		return helpText
	}
}

func argOr(fields []string, i int, def string) string {
	if i < len(fields) {
		return fields[i]
	}
	return def
}

// replyError renders err for an HTML parse_mode reply. Messages may echo raw user input.
func replyError(err error) string {
	var inv *model.InvalidInputError
	if errors.As(err, &inv) {
		return "⚠️ " + html.EscapeString(inv.Error())
	}
	return fmt.Sprintf("❌ %s", html.EscapeString(err.Error()))
}
