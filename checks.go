package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jamesmstone/ghostclaw/internal/format"
	"github.com/jamesmstone/ghostclaw/internal/report"
)

// apiCaller abstracts the Telegram client so checks can run against a fake.
type apiCaller interface {
	Call(ctx context.Context, method string, params map[string]any) tgbotapi.APIResponse
}

// checkRunner executes the fixed check sequence against one bot token.
// Checks run strictly in order, one network call at a time, no retries.
type checkRunner struct {
	api apiCaller
	rep *report.Reporter
	cfg *Config
	now func() time.Time
}

// run drives the sequence. It returns false when the identity check failed
// and the rest of the run was abandoned: an invalid token would make every
// later call fail uninformatively. All other failures are independent.
func (r *checkRunner) run(ctx context.Context) bool {
	r.hostPreflight()
	if !r.checkIdentity(ctx) {
		return false
	}
	r.checkUpdates(ctx)
	r.checkSend(ctx)
	r.checkWebhook(ctx)
	r.checkCommands(ctx)
	r.rep.Summary("Telegram E2E Test Results")
	return true
}

// ═══════════════════════════════════════════════════════════════════
//  HOST PREFLIGHT (informational only)
// ═══════════════════════════════════════════════════════════════════

func (r *checkRunner) hostPreflight() {
	for _, line := range collectHostSnapshot().lines() {
		r.rep.Info(line)
	}
}

// ═══════════════════════════════════════════════════════════════════
//  CHECKS
// ═══════════════════════════════════════════════════════════════════

func (r *checkRunner) checkIdentity(ctx context.Context) bool {
	r.rep.Info("Check 1: bot token validity")
	resp := r.api.Call(ctx, "getMe", nil)
	if !resp.Ok {
		r.rep.Fail("bot token validity", failReason(resp))
		return false
	}

	var me tgbotapi.User
	_ = json.Unmarshal(resp.Result, &me)
	name := me.UserName
	if name == "" {
		name = "unknown"
	}
	r.rep.Pass(fmt.Sprintf("bot token valid - @%s", name))
	return true
}

func (r *checkRunner) checkUpdates(ctx context.Context) {
	r.rep.Info("Check 2: get updates")
	resp := r.api.Call(ctx, "getUpdates", map[string]any{"limit": 1, "timeout": 0})
	if !resp.Ok {
		r.rep.Fail("get updates", failReason(resp))
		return
	}

	var updates []tgbotapi.Update
	_ = json.Unmarshal(resp.Result, &updates)
	r.rep.Pass(fmt.Sprintf("get updates works - %d pending updates", len(updates)))
}

func (r *checkRunner) checkSend(ctx context.Context) {
	if r.cfg.ChatID == "" {
		r.rep.Skip("send message check - " + envChatID + " not set")
		return
	}

	r.rep.Info("Check 3: send message")
	text := fmt.Sprintf("GhostClaw E2E test - %s", r.now().Format("2006-01-02 15:04:05"))
	resp := r.api.Call(ctx, "sendMessage", map[string]any{
		"chat_id": r.cfg.ChatID,
		"text":    text,
	})
	if !resp.Ok {
		r.rep.Fail("send message", failReason(resp))
		return
	}
	r.rep.Pass("send message works")
}

func (r *checkRunner) checkWebhook(ctx context.Context) {
	r.rep.Info("Check 4: webhook info")
	resp := r.api.Call(ctx, "getWebhookInfo", nil)
	if !resp.Ok {
		r.rep.Fail("webhook info", failReason(resp))
		return
	}

	var info tgbotapi.WebhookInfo
	_ = json.Unmarshal(resp.Result, &info)
	if info.URL != "" {
		r.rep.Pass("webhook configured: " + format.Truncate(info.URL, 30))
	} else {
		r.rep.Pass("no webhook configured (polling mode)")
	}
}

func (r *checkRunner) checkCommands(ctx context.Context) {
	r.rep.Info("Check 5: get bot commands")
	resp := r.api.Call(ctx, "getMyCommands", nil)
	if !resp.Ok {
		r.rep.Fail("bot commands", failReason(resp))
		return
	}

	var commands []tgbotapi.BotCommand
	_ = json.Unmarshal(resp.Result, &commands)
	r.rep.Pass(fmt.Sprintf("bot commands retrieved - %d commands", len(commands)))
}

func failReason(resp tgbotapi.APIResponse) string {
	if resp.Description != "" {
		return resp.Description
	}
	return "unknown error"
}
