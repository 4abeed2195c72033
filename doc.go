/*
Package simlab compares text-similarity algorithms side by side.

Given a query and a small in-memory corpus, simlab scores every document
under five independent methods and ranks each method's results on its own,
so the trade-offs between them can be inspected on the same data:
frequency-blind versus frequency-aware, character-level versus word-level,
symmetric versus asymmetric.

# Quick Start

	package main

	import (
	    "fmt"
	    "log"

	    "github.com/wizenheimer/simlab"
	)

	func main() {
	    // nil documents selects the built-in ten sample sentences
	    res, err := simlab.CompareAllMethods("brown fox", nil)
	    if err != nil {
	        log.Fatal(err)
	    }

	    for _, ranking := range res.Rankings {
	        best := ranking.Top(1)[0]
	        fmt.Printf("%-12s %.3f %s\n", ranking.Kind, best.Score, best.Document)
	    }
	}

# Methods

Jaccard: distinct shared words over distinct words of both texts.

	|A ∩ B| / |A ∪ B|

Cosine: cosine of the angle between raw word-count vectors.

	(A · B) / (||A|| × ||B||)

TFIDF: cosine between TF-IDF weighted vectors. TF is count / length within
one text, IDF is ln(N / df) over the documents of the call plus the query.
Words present in every text weigh zero.

Levenshtein: 1 - editDistance / maxLength over lowercased characters.
Two empty texts score 1.

WordOverlap: distinct shared words over distinct query words. This is the
only asymmetric method; it measures how much of the query a document covers.

Every score lies in [0, 1]. Texts that tokenize to nothing score 0 under
every word-based method.

# Tokenization

By default text is lowercased, every rune that is not a letter, number, or
whitespace is removed, and the rest is split on whitespace. SegmentingTokenizer
instead applies NFKC normalization and UAX#29 word segmentation:

	cmp, err := simlab.NewComparer(simlab.WithTokenizer(simlab.SegmentingTokenizer{}))

# Comparer

A Comparer carries configuration only: the default document set, the
methods to run, the tokenizer, and the number of parallel workers.

	cmp, err := simlab.NewComparer(
	    simlab.WithDefaultDocuments(myDocs),
	    simlab.WithMethods(simlab.Jaccard, simlab.TFIDF),
	    simlab.WithWorkers(4),
	)
	res, err := cmp.Compare("neural networks", nil)

The method × document score matrix is computed in parallel; each ranking is
then sorted with a stable sort so equal scores keep document order and
repeated calls return identical rankings. IDF statistics are rebuilt on every
call, so TF-IDF scores depend on the documents passed to that call.

A method that panics or produces a score outside [0, 1] fails only its own
ranking (Ranking.Err); text that is not valid UTF-8 is rejected up front with
ErrInvalidInput.

# Consensus

Rankings can be fused into a single consensus list:

	rrf, _ := simlab.NewFusion(simlab.ReciprocalRankFusion, nil)
	consensus := res.Consensus(rrf)

# Method Catalog

GetMethodInfo returns presentation metadata for every method: name,
description, formula, pros, cons, best use, and a display color.
*/
package simlab
