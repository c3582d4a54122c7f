package lexer

const Theory = `
# Arithmetic Scanner

The scanner turns an arithmetic expression into a flat, lossless sequence of tokens.

## Cursor and States

The scanner holds the whole source and a byte cursor.
- SCANNING: cursor < len(source). Each Next call consumes at least one byte and emits a content token.
- AT_END: cursor == len(source). Next steps the cursor one past the end and emits EndOfInput.
- EXHAUSTED: cursor > len(source). Next returns false forever.
EndOfInput is emitted exactly once, also for an empty source.

## Classification

- A run of ASCII digits is one Number (maximal munch). The byte after the run is read, then un-read, so the next call classifies it.
- Every other rune is one token: + - * / ( ) and the space character have their own kinds; anything else is Unsupported.
- Invalid is only produced when nothing can be consumed, which Next never reaches in practice.
Whitespace is a token. Filtering it is the consumer's business.

## Spans

Every content token covers [start, cursor) and owns a copy of that text, so concatenating the texts reproduces the source.
EndOfInput covers [0,0) with text "\x00" unless AnchorEndOfInput is given, in which case it covers [len,len) with empty text.

## Never Fail

Next has no error result. Bad input becomes Unsupported or Invalid tokens and the stream always ends with EndOfInput.
Deciding that a stream is unacceptable belongs to the consumer.

## Numbers

The scanner keeps literals only. Token.Decimal and Token.Int64 derive values on demand, so long digit runs cannot overflow during scanning.
`
