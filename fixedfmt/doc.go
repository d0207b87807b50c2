/*Package fixedfmt loads the plain text files used by the RCE model: numeric tables
whose meaning depends only on column position, and line-oriented configuration text.

Numeric files may be compressed. A name ending in .zst is read through a zstd
decoder, and one ending in .gz through a gzip decoder; anything else is read as is.
Configuration text is always read as is.
*/
package fixedfmt
