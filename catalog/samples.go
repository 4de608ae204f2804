package catalog

// Samples is the starter shelf loaded when the catalog boots with samples
// enabled.
var Samples = []Fields{
	{"C++ Primer", "Stanley B. Lippman", "978-0321714113", "A comprehensive guide to C++ programming language", "005.133"},
	{"Effective C++", "Scott Meyers", "978-0321334879", "50 specific ways to improve your programs and designs", "005.13"},
	{"C++ Concurrency in Action", "Anthony Williams", "978-1933988771", "Practical multithreading and concurrent programming in C++", "005.13"},
	{"The C++ Programming Language", "Bjarne Stroustrup", "978-0321563842", "The definitive reference guide to C++ by its creator", "005.133"},
	{"Modern C++ Design", "Andrei Alexandrescu", "978-0201704310", "Advanced techniques for generic programming and templates", "005.133"},
	{"C++ Templates: The Complete Guide", "David Vandevoorde", "978-0321714121", "In-depth exploration of C++ template programming", "005.13"},
	{"Accelerated C++", "Andrew Koenig", "978-0201379624", "Practical programming by example for learning C++", "005.133"},
	{"C++ Coding Standards", "Herb Sutter", "978-0321113586", "101 rules, guidelines, and best practices for writing excellent C++ code", "005.13"},
	{"Design Patterns in C++", "Gang of Four", "978-0201633610", "Elements of reusable object-oriented software implementation in C++", "005.13"},
	{"Thinking in C++", "Bruce Eckel", "978-0139798092", "Volume Two: Practical Programming for advanced C++ developers", "005.133"},
}

// LoadSamples adds every sample book to c.
func LoadSamples(c *Catalog) error {
	for _, fields := range Samples {
		_, err := c.Add(fields)
		if err != nil {
			return err
		}
	}
	return nil
}
