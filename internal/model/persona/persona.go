package persona

// Persona describes a historical or user-created figure the responder can
// speak as. Context carries the biographical framing embedded into prompts.
type Persona struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Lifespan    string `json:"lifespan"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Context     string `json:"context"`
	IsCustom    bool   `json:"isCustom"`
}

// Seed provides the curated historical persona catalog in insertion order.
func Seed() []Persona {
	return []Persona{
		{
			Name:        "Nelson Mandela",
			Lifespan:    "1918-2013",
			Category:    "Leaders",
			Description: "South African anti-apartheid revolutionary, political leader, and philanthropist",
			ImageURL:    "https://images.unsplash.com/photo-1601163584558-c7f1e67f4590?w=150&h=150&fit=crop&crop=faces",
			Context:     "First black president of South Africa, human rights advocate and Nobel Peace Prize winner. Known for his role in ending apartheid and promoting reconciliation.",
		},
		{
			Name:        "Albert Einstein",
			Lifespan:    "1879-1955",
			Category:    "Scientists",
			Description: "Theoretical physicist who developed the theory of relativity",
			ImageURL:    "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=faces",
			Context:     "One of the most influential scientists of the 20th century. Developed the theory of relativity and contributed to the development of quantum mechanics.",
		},
		{
			Name:        "Marie Curie",
			Lifespan:    "1867-1934",
			Category:    "Scientists",
			Description: "Physicist and chemist who conducted pioneering research on radioactivity",
			ImageURL:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=faces",
			Context:     "First woman to win a Nobel Prize and the only person to win Nobel Prizes in multiple scientific fields. Discovered the elements polonium and radium.",
		},
		{
			Name:        "William Shakespeare",
			Lifespan:    "1564-1616",
			Category:    "Artists",
			Description: "English poet, playwright, and actor, widely regarded as the greatest writer in the English language",
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=faces",
			Context:     "Created approximately 39 plays and 154 sonnets. His works include Romeo and Juliet, Hamlet, Macbeth, and A Midsummer Night's Dream.",
		},
		{
			Name:        "Cleopatra",
			Lifespan:    "69-30 BC",
			Category:    "Leaders",
			Description: "Last active ruler of the Ptolemaic Kingdom of Egypt",
			ImageURL:    "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?w=150&h=150&fit=crop&crop=faces",
			Context:     "Known for her relationships with Julius Caesar and Mark Antony. Skilled diplomat, fluent in many languages, and educated in mathematics, astronomy, and philosophy.",
		},
		{
			Name:        "Leonardo da Vinci",
			Lifespan:    "1452-1519",
			Category:    "Artists",
			Description: "Italian polymath: painter, sculptor, architect, scientist, mathematician, engineer, and inventor",
			ImageURL:    "https://images.unsplash.com/photo-1531384441138-2736e62e0919?w=150&h=150&fit=crop&crop=faces",
			Context:     "Created iconic works of art like the Mona Lisa and The Last Supper. Made discoveries in anatomy, civil engineering, optics, and hydrodynamics.",
		},
		{
			Name:        "Joan of Arc",
			Lifespan:    "1412-1431",
			Category:    "Leaders",
			Description: "French heroine and military leader who played a key role in the Hundred Years' War",
			ImageURL:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop&crop=faces",
			Context:     "Led the French army to victory at Orléans, claiming divine guidance. Captured and burned at the stake, later canonized as a Roman Catholic saint.",
		},
		{
			Name:        "Mahatma Gandhi",
			Lifespan:    "1869-1948",
			Category:    "Leaders",
			Description: "Indian lawyer, anti-colonial nationalist and political ethicist who led India to independence",
			ImageURL:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop&crop=faces",
			Context:     "Employed nonviolent civil disobedience to lead India to independence from British rule. Inspired movements for civil rights around the world.",
		},
		{
			Name:        "Socrates",
			Lifespan:    "470-399 BC",
			Category:    "Philosophers",
			Description: "Classical Greek philosopher credited as the founder of Western philosophy",
			ImageURL:    "https://images.unsplash.com/photo-1531045535792-96e9320d70c0?w=150&h=150&fit=crop&crop=faces",
			Context:     "Developed the Socratic method of questioning and critical thinking. His teachings are known primarily through accounts by his students Plato and Xenophon.",
		},
		{
			Name:        "Queen Elizabeth I",
			Lifespan:    "1533-1603",
			Category:    "Leaders",
			Description: "Queen of England and Ireland from 1558 until her death in 1603",
			ImageURL:    "https://images.unsplash.com/photo-1557296387-5358ad7997bb?w=150&h=150&fit=crop&crop=faces",
			Context:     "Daughter of Henry VIII and Anne Boleyn. Her reign (known as the Elizabethan era) is known for cultural flourishing, including the works of Shakespeare.",
		},
		{
			Name:        "Nikola Tesla",
			Lifespan:    "1856-1943",
			Category:    "Scientists",
			Description: "Serbian-American inventor, electrical engineer, and futurist",
			ImageURL:    "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?w=150&h=150&fit=crop&crop=faces",
			Context:     "Best known for his contributions to the design of the modern alternating current (AC) electricity supply system and wireless power transmission.",
		},
		{
			Name:        "Frida Kahlo",
			Lifespan:    "1907-1954",
			Category:    "Artists",
			Description: "Mexican painter known for her many portraits, self-portraits, and works inspired by Mexico",
			ImageURL:    "https://images.unsplash.com/photo-1557053908-4793c484549c?w=150&h=150&fit=crop&crop=faces",
			Context:     "Her work is celebrated for its raw emotional quality and vibrant colors. Her artistic style was influenced by indigenous Mexican culture and European influences.",
		},
		{
			Name:        "Confucius",
			Lifespan:    "551-479 BC",
			Category:    "Philosophers",
			Description: "Chinese philosopher and politician of the Spring and Autumn period",
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=faces",
			Context:     "His teachings, emphasized personal and governmental morality, correctness of social relationships, justice, and sincerity.",
		},
		{
			Name:        "Ada Lovelace",
			Lifespan:    "1815-1852",
			Category:    "Scientists",
			Description: "English mathematician and writer, known for her work on Charles Babbage's Analytical Engine",
			ImageURL:    "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=150&h=150&fit=crop&crop=faces",
			Context:     "Often regarded as the first computer programmer for her work on Babbage's proposed mechanical general-purpose computer. Daughter of poet Lord Byron.",
		},
		{
			Name:        "Malcolm X",
			Lifespan:    "1925-1965",
			Category:    "Leaders",
			Description: "American Muslim minister and human rights activist",
			ImageURL:    "https://images.unsplash.com/photo-1567784177951-6fa58317e16b?w=150&h=150&fit=crop&crop=faces",
			Context:     "Prominent figure in the civil rights movement, advocated for Black empowerment and the promotion of Islam within the Black community.",
		},
		{
			Name:        "Aristotle",
			Lifespan:    "384-322 BC",
			Category:    "Philosophers",
			Description: "Greek philosopher and polymath during the Classical period in Ancient Greece",
			ImageURL:    "https://images.unsplash.com/photo-1589391886645-d51c72dc6846?w=150&h=150&fit=crop&crop=faces",
			Context:     "Studied under Plato and tutored Alexander the Great. Founded the Lyceum and the Peripatetic school of philosophy. His writings cover physics, biology, metaphysics, ethics, and more.",
		},
		{
			Name:        "Amelia Earhart",
			Lifespan:    "1897-1937",
			Category:    "Leaders",
			Description: "American aviation pioneer and author",
			ImageURL:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=faces",
			Context:     "First female aviator to fly solo across the Atlantic Ocean. Set many other records and authored books about her flying experiences.",
		},
		{
			Name:        "Ludwig van Beethoven",
			Lifespan:    "1770-1827",
			Category:    "Artists",
			Description: "German composer and pianist; a crucial figure in the transition between the Classical and Romantic eras",
			ImageURL:    "https://images.unsplash.com/photo-1593104547489-5cfb3839a3b5?w=150&h=150&fit=crop&crop=faces",
			Context:     "Composed many of his most admired works after he became deaf. His works include nine symphonies, 32 piano sonatas, and 16 string quartets.",
		},
		{
			Name:        "Eleanor Roosevelt",
			Lifespan:    "1884-1962",
			Category:    "Leaders",
			Description: "American political figure, diplomat and activist",
			ImageURL:    "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?w=150&h=150&fit=crop&crop=faces",
			Context:     "First Lady of the United States during her husband Franklin D. Roosevelt's presidency. Served as United States Delegate to the United Nations General Assembly.",
		},
		{
			Name:        "Charles Darwin",
			Lifespan:    "1809-1882",
			Category:    "Scientists",
			Description: "English naturalist, geologist and biologist, best known for his contributions to the science of evolution",
			ImageURL:    "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=faces",
			Context:     "His book 'On the Origin of Species' established that all species of life have descended from common ancestors through a process he called natural selection.",
		},
	}
}
