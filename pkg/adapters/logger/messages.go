package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Composer outcome
		"Logo saved successfully as '%s'": "ロゴを '%s' に保存しました",
		"Error: %s":                       "エラー: %s",
		"Composing logo from %s":          "%s からロゴを作成中",

		// Crop stage
		"Resizing %dx%d image to %dx%d": "%dx%d の画像を %dx%d にリサイズ中",
		"Applying circular mask":        "円形マスクを適用中",

		// Layout stage
		"Layout calculated: %dx%d canvas, text %s": "レイアウト計算完了: %dx%d キャンバス, テキスト位置 %s",

		// Typeface
		"Loaded font %s at %.0fpt":                "フォント %s を %.0fpt で読み込みました",
		"Font %s unavailable, using built-in font": "フォント %s が利用できないため、内蔵フォントを使用します",
		"Measured text %q: %dx%d":                  "テキスト %q の寸法: %dx%d",

		// Output
		"Writing %d bytes to %s": "%d バイトを %s に書き込み中",
	})
}
