// Package main provides localization for the c63 CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":    "入力",
		"Output":   "出力先",
		"Encoding": "エンコード",
		"Debug":    "デバッグ",
		"Logging":  "ログ",

		// Commands
		"Encode raw YUV 4:2:0 video with the c63 codec": "生のYUV 4:2:0 動画を c63 コーデックでエンコード",
		"Encode a raw YUV file":                         "YUVファイルをエンコード",
		"Decode a c63 stream to raw YUV":                "c63 ストリームをYUVにデコード",
		"Show version information":                      "バージョン情報を表示",
		"c63 version %s":                                "c63 バージョン %s",

		// Input flags
		"YAML configuration file":               "YAML設定ファイル",
		"Input YUV file":                        "入力YUVファイル",
		"Input c63 file":                        "入力c63ファイル",
		"Picture width in pixels":               "画像の幅（ピクセル）",
		"Picture height in pixels":              "画像の高さ（ピクセル）",
		"Stop after this many frames (0 = all)": "指定フレーム数で停止（0 = すべて）",

		// Output flags
		"Output file path (required)": "出力ファイルパス（必須）",
		"Output YUV file":             "出力YUVファイル",
		"Output container (c63, mp4; default: from the output extension)": "出力コンテナ（c63, mp4。デフォルト: 出力ファイルの拡張子から判定）",
		"Frame rate recorded in MP4 output":                               "MP4出力に記録するフレームレート",
		"Write reconstructed pictures to this YUV file":                   "再構成画像をこのYUVファイルに書き出す",
		"Output execution summary to file (Markdown format)":              "実行サマリーをファイルに出力（Markdown形式）",

		// Encoding flags
		"Quality parameter (1-255, larger is coarser)": "品質パラメータ（1-255、大きいほど粗い）",
		"Luma motion search range in pixels":           "輝度の動き探索範囲（ピクセル）",
		"Frames between keyframes":                     "キーフレーム間隔（フレーム数）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Encode Summary":    "エンコードサマリー",
		"Generated":         "生成日時",
		"Settings":          "設定",
		"Quality":           "品質",
		"Timing":            "処理時間",
		"Item":              "項目",
		"Value":             "値",
		"File":              "ファイル",
		"Picture Size":      "画像サイズ",
		"Padded Size":       "パディング後サイズ",
		"QP":                "QP",
		"Search Range":      "探索範囲",
		"Keyframe Interval": "キーフレーム間隔",
		"Container":         "コンテナ",
		"Frame Limit":       "フレーム上限",
		"All":               "すべて",
		"Frames":            "フレーム数",
		"Keyframes":         "キーフレーム数",
		"Coded Size":        "符号化サイズ",
		"File Size":         "ファイルサイズ",
		"Bits per Pixel":    "ビット/画素",
		"Mean SAD":          "平均SAD",
		"Elapsed":           "経過時間",
		"Encode Speed":      "エンコード速度",
		"Generated by":      "生成:",
	})
}
