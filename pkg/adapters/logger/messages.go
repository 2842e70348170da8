package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Run level messages (info)
		"Encoding %s (%dx%d, padded to %dx%d)":       "%s をエンコード中 (%dx%d, パディング後 %dx%d)",
		"Encoded %d frames (%d keyframes), %d bytes": "%d フレームをエンコードしました (キーフレーム %d), %d バイト",
		"Output saved to %s":                         "出力を %s に保存しました",
		"Interrupted, shutting down...":              "中断されました。シャットダウン中...",
		"Stopped after %d frames":                    "%d フレームで停止しました",

		// Encode stage
		"Frame %d: keyframe, PSNR Y %.2f dB":                   "フレーム %d: キーフレーム, PSNR Y %.2f dB",
		"Frame %d: %d blocks searched, SAD %d, PSNR Y %.2f dB": "フレーム %d: %d ブロックを探索, SAD %d, PSNR Y %.2f dB",
		"Frame %d written: %d bytes":                           "フレーム %d を書き込みました: %d バイト",

		// Inspect stage
		"Saved debug output for frame %d": "フレーム %d のデバッグ出力を保存しました",

		// Errors
		"Failed to read picture %d: %s":      "ピクチャ %d の読み込みに失敗しました: %s",
		"Failed to encode picture %d: %s":    "ピクチャ %d のエンコードに失敗しました: %s",
		"Failed to write output: %s":         "出力の書き込みに失敗しました: %s",
		"Failed to write reconstruction: %s": "再構成画像の書き込みに失敗しました: %s",
		"Failed to save debug output: %s":    "デバッグ出力の保存に失敗しました: %s",
	})
}
