package app

// usageText is printed verbatim for -h/--help.
const usageText = `Usage: textcipher [-i/--infile <file>] [-o/--outfile <file>] [-c/--cipher <cipher>] [-k/--key <key>] [--encrypt/--decrypt]

Encrypts/decrypts input alphanumeric text using classical ciphers

Available options:

  -h|--help
                      Print this help message and exit

  -v|--version
                      Print version information and exit

  -i|--infile FILE
                      Read text to be processed from FILE
                      Stdin will be used if not supplied

  -o|--outfile FILE
                      Write processed text to FILE
                      Stdout will be used if not supplied

  -c|--cipher CIPHER
                      Specify the cipher to be used
                      CIPHER can be shift, digraph or polyalphabetic - shift is the default

  -k|--key KEY
                      Specify the cipher KEY
                      A null key, i.e. no encryption, is used if not supplied

  --encrypt
                      Use the cipher to encrypt the input text (default behaviour)

  --decrypt
                      Use the cipher to decrypt the input text

  --config FILE
                      Read default settings from the HCL FILE
                      Explicit flags always override file values

  --log-level LEVEL
                      Set the logging level: debug, info, warn or error (default warn)

  --log-format FORMAT
                      Set the log output format: text or json (default text)
`
