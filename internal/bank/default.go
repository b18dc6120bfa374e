package bank

// Default is the built-in bank used when no bank file can be loaded. It
// mirrors the shipped catalog: topic-organized open-form sections plus a flat
// multiple-choice section.
func Default() Bank {
	return Bank{
		"Practice": {
			Shape: ByTopic,
			Topics: map[string]Pool{
				"Data Structures": {
					DifficultyEasy: {
						{Text: "What is a stack and which principle does it follow?", Answer: "A stack is a linear data structure that follows the last in first out principle where elements are pushed and popped from the same end."},
						{Text: "What is the difference between an array and a linked list?", Answer: "An array stores elements in contiguous memory with constant time index access while a linked list stores nodes with pointers allowing cheap insertion and deletion but linear time access."},
					},
					DifficultyMedium: {
						{Text: "How does a hash table handle collisions?", Answer: "A hash table handles collisions using chaining where each bucket holds a list of entries or open addressing where probing finds the next free slot."},
						{Text: "Explain how a binary search tree keeps lookups fast.", Answer: "A binary search tree keeps smaller keys in the left subtree and larger keys in the right subtree so each comparison halves the search space giving logarithmic lookups when balanced."},
					},
					DifficultyHard: {
						{Text: "Why do self balancing trees rotate nodes?", Answer: "Self balancing trees rotate nodes to restore height balance after insertions or deletions so the tree height stays logarithmic and operations keep logarithmic cost."},
					},
				},
				"Algorithms": {
					DifficultyEasy: {
						{Text: "What is the time complexity of binary search and why?", Answer: "Binary search runs in logarithmic time because each comparison discards half of the remaining sorted range."},
						{Text: "What does a sorting algorithm being stable mean?", Answer: "A stable sorting algorithm preserves the relative order of elements that compare equal."},
					},
					DifficultyMedium: {
						{Text: "Explain the idea behind dynamic programming.", Answer: "Dynamic programming solves a problem by breaking it into overlapping subproblems solving each once and storing results to avoid recomputation."},
					},
					DifficultyHard: {
						{Text: "When does a greedy algorithm produce an optimal solution?", Answer: "A greedy algorithm is optimal when the problem has the greedy choice property and optimal substructure so locally best choices compose into a globally best solution."},
					},
				},
			},
		},
		"Mock Interview": {
			Shape: ByTopic,
			Topics: map[string]Pool{
				"HR Round": {
					DifficultyEasy: {
						{Text: "Tell me about yourself.", Answer: "A short summary of education key projects technical strengths and the role being pursued."},
						{Text: "What is your greatest strength?", Answer: "A concrete strength backed by an example such as problem solving shown in a project or teamwork shown in a group effort."},
					},
					DifficultyMedium: {
						{Text: "Describe a conflict you faced in a team and how you resolved it.", Answer: "Describe the disagreement the steps taken to listen to both sides the compromise reached and what the team learned."},
					},
					DifficultyHard: {
						{Text: "Why should we hire you over other candidates?", Answer: "Connect the role requirements to specific skills and delivered results and show motivation for the company mission."},
					},
				},
				"Technical Round": {
					DifficultyEasy: {
						{Text: "What happens when you type a URL into a browser?", Answer: "The browser resolves the domain through DNS opens a TCP connection performs a TLS handshake sends an HTTP request and renders the response."},
					},
					DifficultyMedium: {
						{Text: "Explain the difference between a process and a thread.", Answer: "A process has its own address space while threads share the address space of their process making thread switches cheaper but requiring synchronization."},
					},
					DifficultyHard: {
						{Text: "How would you design a rate limiter for an API?", Answer: "Use a token bucket or sliding window per client key stored in memory or a shared cache rejecting requests once the budget is spent and refilling at a fixed rate."},
					},
				},
			},
		},
		"MCQ Quiz": {
			Shape: FlatByDifficulty,
			Flat: Pool{
				DifficultyEasy: {
					{Text: "Which data structure uses FIFO ordering?", Answer: "Queue", Options: []string{"Stack", "Queue", "Tree", "Graph"}},
					{Text: "What is the worst-case complexity of linear search?", Answer: "O(n)", Options: []string{"O(1)", "O(log n)", "O(n)", "O(n^2)"}},
					{Text: "Which keyword defines a function in Python?", Answer: "def", Options: []string{"func", "def", "fn", "lambda"}},
				},
				DifficultyMedium: {
					{Text: "Which traversal of a binary search tree yields sorted order?", Answer: "Inorder", Options: []string{"Preorder", "Inorder", "Postorder", "Level order"}},
					{Text: "Average-case lookup in a hash table is:", Answer: "O(1)", Options: []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}},
				},
				DifficultyHard: {
					{Text: "Which algorithm finds shortest paths with negative edge weights?", Answer: "Bellman-Ford", Options: []string{"Dijkstra", "Bellman-Ford", "Prim", "Kruskal"}},
					{Text: "The height of a balanced AVL tree with n nodes is:", Answer: "O(log n)", Options: []string{"O(1)", "O(log n)", "O(n)", "O(sqrt n)"}},
				},
			},
		},
		"Pseudocode": {
			Shape: ByTopic,
			Topics: map[string]Pool{
				"Output Prediction": {
					DifficultyEasy: {
						{Text: "x = 3; y = x * 2; print(y). What is printed?", Answer: "6"},
					},
					DifficultyMedium: {
						{Text: "s = 0; for i in 1..4: s = s + i; print(s). What is printed?", Answer: "10"},
					},
					DifficultyHard: {
						{Text: "f(n) returns 1 if n <= 1 else n * f(n-1). What is f(5)?", Answer: "120"},
					},
				},
				"Logical Flow": {
					DifficultyEasy: {
						{Text: "Write pseudocode to find the maximum of two numbers.", Answer: "if a greater than b return a else return b"},
					},
					DifficultyMedium: {
						{Text: "Write pseudocode to reverse an array in place.", Answer: "swap elements from both ends moving the left index forward and the right index backward until they meet"},
					},
					DifficultyHard: {
						{Text: "Write pseudocode for binary search on a sorted array.", Answer: "keep low and high bounds compare the middle element with the target and move the bound that excludes the target until found or the range is empty"},
					},
				},
			},
		},
	}
}
