package simlab

// sampleDocuments is the built-in demonstration corpus. The sentences span
// animals, machine learning, programming languages, weather and beverages,
// and are picked so the methods visibly disagree on rankings.
var sampleDocuments = [...]string{
	"The quick brown fox jumps over the lazy dog.",
	"A fast brown fox leaps over a sleepy canine.",
	"The cat sat on the mat and watched the dog sleep.",
	"Machine learning is a subset of artificial intelligence.",
	"Deep learning uses neural networks with multiple layers.",
	"Python is a popular programming language for data science.",
	"JavaScript is widely used for web development.",
	"The weather is sunny and warm today.",
	"It's raining heavily with strong winds outside.",
	"Coffee and tea are popular caffeinated beverages.",
}

// SampleDocuments returns a copy of the built-in ten-sentence corpus used
// when a comparison is run without documents.
func SampleDocuments() []string {
	docs := make([]string, len(sampleDocuments))
	copy(docs, sampleDocuments[:])
	return docs
}
