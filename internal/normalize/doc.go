// Package normalize contains the text normalization passes applied to one
// file's content at a time.
//
// Назначение: чистые преобразования строка → строка, без IO и без CLI.
// Не делает: обхода дерева, чтения/записи файлов, вывода прогресса.
// Зависимости: только стандартная библиотека.
//
// The comment pass is the only stateful part: it folds a single
// "previous line was a comment" boolean across the lines of a document so
// that capitalization lands on the first line of a comment block and
// terminal punctuation on the last. Everything else is a stateless,
// single-pass substitution.
package normalize
