// Package main provides localization for the roundlogo CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Create round logos with text from a single image.": "1枚の画像から文字入りの丸いロゴを作成します。",

		// Version command
		"roundlogo version %s": "roundlogo バージョン %s",

		// Runtime messages
		"Interrupted, shutting down...": "中断しました。終了しています...",
		"Failed to write summary: %v":   "サマリーの書き込みに失敗しました: %v",
		"Summary written to %s":         "サマリーを %s に書き出しました",
	})
}
