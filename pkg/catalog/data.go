package catalog

// defaultSubjects is the compiled-in roadmap in declaration order.
func defaultSubjects() []Subject {
	return []Subject{
		{ID: "Start1", Name: "Start Philosophy", Category: Recommended},
		{ID: "Start2", Name: "Start Mathematics", Category: Essential},
		{
			ID: "IntroPhilosophy", Name: "Introduction to Philosophy", Category: Recommended,
			Books: []Book{
				{Title: "Think: A Compelling Introduction to Philosophy", Author: "Simon Blackburn", Category: Recommended},
				{Title: "Philosophy: A Text with Readings", Author: "Manuel Velasquez", Category: Recommended},
				{Title: "Thinking It Through: An Introduction to Contemporary Philosophy", Author: "Kwame Appiah", Category: Recommended},
			},
		},
		{
			ID: "IntroLogic", Name: "Introduction to Logic", Category: Recommended,
			Books: []Book{
				{Title: "The Power of Logic", Author: "Frances Howard-Snyder, Daniel Howard-Snyder, Ryan Wasserman", Category: Recommended},
				{Title: "A Concise Introduction to Logic", Author: "Patrick J. Hurley", Category: Recommended},
			},
		},
		{
			ID: "ProblemSolving", Name: "Problem Solving", Category: Recommended,
			Books: []Book{
				{Title: "How to Solve It", Author: "G. Polya", Category: Recommended},
				{Title: "Solving Mathematical Problems", Author: "Terence Tao", Category: Recommended},
				{Title: "Mathematical Discovery", Author: "George Polya", Category: Recommended},
				{Title: "How to Solve Mathematical Problems", Author: "Wayne Wickelgren", Category: Recommended},
			},
		},
		{
			ID: "PhilosophyLanguage", Name: "Philosophy of Language", Category: Recommended,
			Books: []Book{
				{Title: "Philosophy of Language", Author: "Alexander Miller", Category: Recommended},
				{Title: "Philosophy of Language", Author: "William G. Lycan", Category: Recommended},
				{Title: "An Introduction to Philosophy of Language", Author: "Michael Morris", Category: Recommended},
				{Title: "Philosophy of Language: An Introduction", Author: "Chris Daly", Category: Recommended},
			},
		},
		{
			ID: "PhilosophyMath", Name: "Philosophy of Mathematics and Logic", Category: Recommended,
			Books: []Book{
				{Title: "Introduction to Logic and Methodology", Author: "Alfred Tarski", Category: Recommended},
				{Title: "Introduction to Mathematical Philosophy", Author: "Bertrand Russell", Category: Recommended},
				{Title: "Mathematical Thought", Author: "Evert W. Beth", Category: Recommended},
				{Title: "On the Philosophy of Logic", Author: "Jennifer Fisher", Category: Recommended},
				{Title: "Philosophy of Logics", Author: "Susan Haack", Category: Recommended},
				{Title: "Philosophy of Mathematics", Author: "James Robert Brown", Category: Recommended},
				{Title: "The Foundations of Arithmetic", Author: "Gottlob Frege", Category: Recommended},
				{Title: "The Concept of Logical Consequence", Author: "John Etchemendy", Category: Recommended},
				{Title: "The Concept of Logical Consequence: An Introduction", Author: "Matthew W. McKeon", Category: Recommended},
			},
		},
		{
			ID: "Precalculus", Name: "Precalculus", Category: Essential,
			Books: []Book{
				{Title: "Precalculus: Mathematics for Calculus", Author: "Stewart, Redlin, Watson", Category: Essential},
				{Title: "Precalculus", Author: "Michael Sullivan", Category: Essential},
			},
		},
		{
			ID: "Calculus", Name: "Calculus", Category: Essential,
			Books: []Book{
				{Title: "Calculus: Early Transcendentals", Author: "James Stewart", Category: Essential},
				{Title: "Thomas' Calculus", Author: "George B. Thomas Jr.", Category: Essential},
				{Title: "Infinite Powers", Author: "Steven H. Strogatz", Category: Recommended},
			},
		},
		{
			ID: "Physics", Name: "Introduction to Physics", Category: Optional,
			Books: []Book{
				{Title: "Physics for Scientists and Engineers with Modern Physics", Author: "Raymond A. Serway, John W. Jewett Jr.", Category: Optional},
				{Title: "An Introduction to Physical Science", Author: "James T. Shipman, Jerry D. Wilson, Charles A. Higgens Jr.", Category: Optional},
				{Title: "Physics for Scientists and Engineers: A Strategic Approach", Author: "Randall D. Knight", Category: Optional},
			},
		},
		{
			ID: "LinearAlgebra", Name: "Introduction to Linear Algebra", Category: Essential,
			Books: []Book{
				{Title: "Elementary Linear Algebra", Author: "Howard Anton, Chris Rorres", Category: Essential},
				{Title: "Introduction to Linear Algebra", Author: "Gilbert Strang", Category: Essential},
				{Title: "Linear Algebra and Its Applications", Author: "Lay, Lay, McDonald", Category: Essential},
			},
		},
		{
			ID: "AdvancedLinearAlgebra", Name: "Advanced Linear Algebra", Category: Essential,
			Books: []Book{
				{Title: "Linear Algebra Done Right", Author: "Sheldon Axler", Category: Essential},
				{Title: "Linear Algebra", Author: "Serge Lang", Category: Essential},
				{Title: "Finite-Dimensional Vector Spaces", Author: "Paul R. Halmos", Category: Essential},
				{Title: "Linear Algebra Done Wrong", Author: "Sergei Treil", Category: Essential},
				{Title: "Linear Algebra", Author: "Georgi E. Shilov & Richard A. Silverman", Category: Essential},
			},
		},
		{
			ID: "ProofsDiscrete", Name: "Naive Set Theory, Mathematical Reasoning, and Discrete Mathematics", Category: Essential,
			Books: []Book{
				{Title: "How to Prove It", Author: "Daniel J. Velleman", Category: Essential},
				{Title: "Book of Proof", Author: "Richard Hammak", Category: Essential},
				{Title: "Introduction to Mathematical Proofs", Author: "Charles E. Roberts", Category: Essential},
				{Title: "Proofs and Fundamentals", Author: "Ethan D. Bloch", Category: Essential},
				{Title: "Discrete Mathematics with Applications", Author: "Susanna S. Epp", Category: Essential},
				{Title: "Discrete Mathematics and Its Applications", Author: "Kenneth H. Rosen", Category: Essential},
				{Title: "Mathematics: A Discrete Introduction", Author: "Edward R. Scheinerman", Category: Essential},
			},
		},
		{
			ID: "MathLogic", Name: "Introduction to Mathematical Logic and Model Theory", Category: Essential,
			Books: []Book{
				{Title: "Mathematical Logic", Author: "Ian Chiswell, Wilfrid Hodges", Category: Essential},
				{Title: "Propositional and Predicate Calculus", Author: "Derek Goldrei", Category: Essential},
				{Title: "A Mathematical Introduction to Logic", Author: "Herbert Enderton", Category: Essential},
				{Title: "A Friendly Introduction to Mathematical Logic", Author: "Christopher C. Leary", Category: Essential},
				{Title: "A First Course in Logic", Author: "Shawn Hedman", Category: Essential},
				{Title: "Introduction to Mathematical Logic", Author: "Elliott Mendelson", Category: Essential},
			},
		},
		{
			ID: "SetTheory", Name: "Introduction to Axiomatic Set Theory", Category: Essential,
			Books: []Book{
				{Title: "Classic Set Theory", Author: "Derek Goldrei", Category: Essential},
				{Title: "Elements of Set Theory", Author: "Herbert Enderton", Category: Essential},
				{Title: "Introduction to Set Theory", Author: "Karel Hrbacek, Thomas Jech", Category: Essential},
				{Title: "Foundations of Set Theory", Author: "A.A. Fraenkel, Y. Bar-Hillel, A. Levy", Category: Essential},
				{Title: "A First Course in Mathematical Logic and Set Theory", Author: "Michael L. O'Leary", Category: Essential},
			},
		},
		{
			ID: "CategoryTheory", Name: "Category Theory", Category: Essential,
			Books: []Book{
				{Title: "Category Theory", Author: "Steve Awodey", Category: Essential},
				{Title: "Basic Category Theory", Author: "Tom Leinster", Category: Essential},
				{Title: "Abstract and Concrete Categories: The Joy of Cats", Author: "Jiri Adamek", Category: Essential},
				{Title: "Category Theory: A Gentle Introduction", Author: "Peter Smith", Category: Essential},
				{Title: "Category Theory in Context", Author: "Emily Riehl", Category: Essential},
			},
		},
		{
			ID: "UniversalAlgebra", Name: "Universal Algebra", Category: Essential,
			Books: []Book{
				{Title: "Universal Algebra", Author: "P.M. Cohn", Category: Essential},
				{Title: "A Course in Universal Algebra", Author: "Stanley Burris, H.P. Sankappanavar", Category: Essential},
				{Title: "Universal Algebra", Author: "G. Gratzer", Category: Essential},
				{Title: "Universal Algebra", Author: "Clifford Bergman", Category: Essential},
				{Title: "Post-Modern Algebra", Author: "Jonathan D. H. Smith, Anna B. Romanowska", Category: Essential},
			},
		},
		{
			ID: "EuclideanGeometry", Name: "Euclidean and Non-Euclidean Geometry", Category: Essential,
			Books: []Book{
				{Title: "Foundations of Euclidean and Non-Euclidean Geometry", Author: "Ellery B. Golos", Category: Essential},
				{Title: "Foundations of Geometry", Author: "Gerard A. Venema", Category: Essential},
				{Title: "Euclidean and Non-Euclidean Geometry", Author: "Marvin Jay Greenberg", Category: Essential},
				{Title: "Modern Geometries", Author: "John R. Smart", Category: Essential},
				{Title: "The Four Pillars of Geometry", Author: "John Stillwell", Category: Essential},
				{Title: "A Modern View of Geometry", Author: "Leonard M. Blumenthal", Category: Essential},
				{Title: "Classical Geometry", Author: "I. E. L., J. E. L., A. C. F. L., G. W. T.", Category: Essential},
				{Title: "Euclidean Geometry", Author: "M. Solomonovich", Category: Essential},
				{Title: "Geometry", Author: "D. A. Brannan, M. F. Esplen, J. J. Gray", Category: Essential},
				{Title: "Introduction To Non-Euclidean Geometry", Author: "Harold E. Wolfe", Category: Essential},
				{Title: "Modern Geometry with Applications", Author: "George A. Jennings", Category: Essential},
				{Title: "Projective Geometry", Author: "H. S. M. Coxeter", Category: Essential},
				{Title: "Transformation Geometry", Author: "George E. Martin", Category: Essential},
				{Title: "The Foundations of Geometry and the Non-Euclidean Plane", Author: "George E. Martin", Category: Essential},
			},
		},
		{
			ID: "DifferentialGeometry", Name: "Introduction to Differential Geometry", Category: Essential,
			Books: []Book{
				{Title: "A Differential Approach to Geometry", Author: "Francis Borceux", Category: Essential},
				{Title: "Differential Geometry of Curves and Surfaces", Author: "Kristopher Tapp", Category: Essential},
				{Title: "Differential Geometry of Curves and Surfaces", Author: "Manfredo P. Do Carmo", Category: Essential},
				{Title: "Elementary Differential Geometry", Author: "Barrett O'Neill", Category: Essential},
				{Title: "Elementary Differential Geometry", Author: "Andrew Pressley", Category: Essential},
			},
		},
		{
			ID: "AdvancedDifferentialGeometry", Name: "Advanced Differential Geometry", Category: Essential,
			Books: []Book{
				{Title: "Manifolds, Tensors and Forms", Author: "Paul Renteln", Category: Essential},
				{Title: "An Introduction to Differentiable Manifolds and Riemannian Geometry", Author: "William M. Boothby", Category: Essential},
				{Title: "Introduction to Smooth Manifolds", Author: "John M. Lee", Category: Essential},
				{Title: "A Comprehensive Introduction to Differential Geometry", Author: "Michael Spivak", Category: Essential},
				{Title: "First Steps in Differential Geometry", Author: "Andrew Mclnerney", Category: Essential},
			},
		},
		{
			ID: "AlgebraicGeometry", Name: "Algebraic Geometry", Category: Essential,
			Books: []Book{
				{Title: "Basic Algebraic Geometry", Author: "Igor R. Shafarevich", Category: Essential},
				{Title: "A Royal Road to Algebraic Geometry", Author: "Audune Holme", Category: Essential},
				{Title: "Algebraic Geometry: A First Course", Author: "Joe Harris", Category: Essential},
				{Title: "Elementary Algebraic Geometry", Author: "Keith Kendig", Category: Essential},
				{Title: "Introduction to Algebraic Geometry", Author: "Justin R. Smith", Category: Essential},
			},
		},
		{
			ID: "AlgebraicTopology", Name: "Algebraic Topology", Category: Essential,
			Books: []Book{
				{Title: "Algebraic Topology: An Introduction", Author: "William Massey", Category: Essential},
				{Title: "Algebraic Topology", Author: "Allen Hatcher", Category: Essential},
				{Title: "Elements of Algebraic Topology", Author: "James Munkres", Category: Essential},
				{Title: "A First Course in Algebraic Topology", Author: "C. Kosniowski", Category: Essential},
			},
		},
		{
			ID: "TopologyMotivation", Name: "Algebraic Topology Motivation", Category: Essential,
			Books: []Book{
				{Title: "Invitation to Combinatorial Topology", Author: "Maurice Frechet and Ky Fan", Category: Essential},
				{Title: "Basic Concepts of Algebraic Topology", Author: "Fred H. Croom", Category: Essential},
				{Title: "Basic Topology", Author: "M.A. Armstrong", Category: Essential},
				{Title: "Topology", Author: "John G. Hocking, Gail S. Young", Category: Essential},
				{Title: "Topology", Author: "Klaus Janich", Category: Essential},
			},
		},
		{
			ID: "AlgebraicGeometryMotivation", Name: "Algebraic Geometry Motivation", Category: Essential,
			Books: []Book{
				{Title: "Introduction to Algebraic Geometry", Author: "Brendan Hassett", Category: Essential},
				{Title: "Ideals Varieties and Algorithms", Author: "David A. Cox, John Little, Donal O'Shea", Category: Essential},
			},
		},
		{
			ID: "RealAnalysis", Name: "Introduction to Real Analysis", Category: Essential,
			Books: []Book{
				{Title: "Introduction to Real Analysis", Author: "Robert G. Bartle, Donald R. Sherbert", Category: Essential},
				{Title: "How to Think About Analysis", Author: "Lara Alcock", Category: Essential},
				{Title: "Introduction to Real Analysis", Author: "William F. Trench", Category: Essential},
				{Title: "From Calculus to Analysis", Author: "Steen Pedersen", Category: Essential},
				{Title: "Writing Proofs in Analysis", Author: "Jonathan M. Kane", Category: Essential},
			},
		},
		{
			ID: "ComplexAnalysis", Name: "Introduction to Complex Analysis", Category: Essential,
			Books: []Book{
				{Title: "Complex Analysis", Author: "John M. Howie", Category: Essential},
				{Title: "Complex Analysis with Applications", Author: "Dennis G. Zill", Category: Essential},
				{Title: "Complex Variables and Applications", Author: "James Ward Brown, Ruel Churchill", Category: Essential},
				{Title: "Complex Variables", Author: "Mark J. Ablowitz", Category: Essential},
				{Title: "Visual Complex Analysis", Author: "Tristan Needham", Category: Essential},
			},
		},
		{
			ID: "GeneralTopology", Name: "Introduction to General Topology", Category: Essential,
			Books: []Book{
				{Title: "Topology", Author: "James Munkres", Category: Essential},
				{Title: "General Topology", Author: "Stephen Willard", Category: Essential},
				{Title: "Topology Without Tears", Author: "Sidney A. Morris", Category: Essential},
				{Title: "Topological Spaces", Author: "Gerard Buskes, Arnoud van Rooij", Category: Essential},
				{Title: "Introduction to Metric and Topological Spaces", Author: "Wilson A. Sutherland", Category: Essential},
				{Title: "First Concepts of Topology", Author: "W. G. Chinn & N. E. Steenrod", Category: Essential},
			},
		},
		{
			ID: "FunctionalAnalysis", Name: "Introduction to Functional Analysis", Category: Essential,
			Books: []Book{
				{Title: "Introductory Functional Analysis with Applications", Author: "Erwin Kreyszig", Category: Essential},
				{Title: "Principles of Functional Analysis", Author: "Martin Schechter", Category: Essential},
			},
		},
		{
			ID: "DifferentialEquations", Name: "Introduction to Differential Equations", Category: Essential,
			Books: []Book{
				{Title: "Elementary Differential Equations and Boundary Value Problems", Author: "William E. Boyce, Richard C. DiPrima", Category: Essential},
				{Title: "Differential Equations", Author: "Dennis Zill, Warren Wright", Category: Essential},
				{Title: "Fundamentals of Differential Equations", Author: "David Snider, Edward B. Saff, R. Kent Nagle", Category: Essential},
			},
		},
		{
			ID: "ProbabilityTheory", Name: "Probability Theory", Category: Essential,
			Books: []Book{
				{Title: "A First Course in Probability Theory", Author: "Sheldon Ross", Category: Essential},
				{Title: "Introduction to Probability", Author: "Dimitri Berstekas, John N. Tsitsiklis", Category: Essential},
				{Title: "A Natural Introduction to Probability", Author: "R. Meester", Category: Essential},
				{Title: "Introduction to Probability", Author: "Joseph K. Blitzstein, Jessica Hwang", Category: Essential},
			},
		},
		{
			ID: "Statistics", Name: "Mathematical Statistics", Category: Essential,
			Books: []Book{
				{Title: "Introduction to Mathematical Statistics", Author: "Robert V. Hogg, Joseph W. McKean, Allen T. Craig", Category: Essential},
				{Title: "Mathematical Statistics with Applications", Author: "Dennis D. Wackerly, William Mendenhall, Richard L. Scheaffer", Category: Essential},
				{Title: "Modern Mathematical Statistics with Applications", Author: "Jay L. Devore, Kenneth N. Berk", Category: Essential},
			},
		},
		{
			ID: "AdvancedProbability", Name: "Advanced Probability Theory", Category: Essential,
			Books: []Book{
				{Title: "An Introduction to Probability and Statistics", Author: "V. K. Rohatgi, A. K. Md. E. Saleh", Category: Essential},
				{Title: "A First Look at Rigorous Probability Theory", Author: "Jeffrey S. Rosenthal", Category: Essential},
				{Title: "A User's Guide to Measure Theoretic Probability", Author: "David Pollard", Category: Essential},
				{Title: "Probability", Author: "A. N. Shiryayev", Category: Essential},
				{Title: "Probability and Measure", Author: "Patrick Billingsley", Category: Essential},
				{Title: "An Introduction to Probability Theory and Its Applications", Author: "William Feller", Category: Essential},
			},
		},
		{
			ID: "NumericalAnalysis", Name: "Introduction to Numerical Analysis", Category: Essential,
			Books: []Book{
				{Title: "Numerical Analysis", Author: "Timothy Sauer", Category: Essential},
				{Title: "Numerical Analysis", Author: "Richard Burden, Jr. Douglas Faires", Category: Essential},
				{Title: "Numerical Methods That Usually Work", Author: "Forman S. Acton", Category: Essential},
				{Title: "An Introduction to Numerical Methods and Analysis", Author: "James F. Epperson", Category: Essential},
			},
		},
		{
			ID: "OptimizationTheory", Name: "Introduction to Optimization Theory", Category: Essential,
			Books: []Book{
				{Title: "A First Course in Optimization Theory", Author: "Rangarajan K. Sundaram", Category: Essential},
				{Title: "Introduction to Linear Optimization", Author: "Dimitris Bertsimas, John N. Tsitsiklis", Category: Essential},
				{Title: "Applied Optimization", Author: "Ross Baldick", Category: Essential},
				{Title: "An Introduction to Optimization", Author: "Edwin K.P. Chong, Stanislaw H. Zak", Category: Essential},
				{Title: "Practical Optimization", Author: "Philip E. Gill, Walter Murray, Margaret H. Wright", Category: Essential},
			},
		},
		{
			ID: "ConvexOptimization", Name: "Convex Optimization", Category: Essential,
			Books: []Book{
				{Title: "Convex Optimization Theory", Author: "Dimitri P. Bertsekas", Category: Essential},
				{Title: "Convex Optimization", Author: "Stephen Boyd, Lieven Vandenberghe", Category: Essential},
				{Title: "Convex Analysis and Nonlinear Optimization", Author: "Jonathan M. Borwein, Adrian S. Lewis", Category: Essential},
				{Title: "Foundations of Optimization", Author: "Osman Güler", Category: Essential},
			},
		},
		{
			ID: "ProgrammingPython", Name: "Introduction to Programming with Python", Category: Optional,
			Books: []Book{
				{Title: "Head First Python", Author: "Paul Barry", Category: Optional},
				{Title: "Think Python: How to think like a computer scientist", Author: "Allen B. Downey", Category: Optional},
				{Title: "A Beginners Guide to Python 3 Programming", Author: "John Hunt", Category: Optional},
			},
		},
		{
			ID: "AdvancedStatistics", Name: "Advanced Mathematical Statistics", Category: Essential,
			Books: []Book{
				{Title: "Statistical Inference", Author: "George Casella, Roger L. Berger", Category: Essential},
				{Title: "Mathematical Statistics: Basic Ideas and Selected Topics", Author: "Kjell A. Doksum, Peter J. Bickel", Category: Essential},
				{Title: "Robust Statistics", Author: "Frank R. H., Elvezio M. R., Peter J. R., Werner A. S.", Category: Essential},
				{Title: "Theory of Statistics", Author: "Mark J. Schervish", Category: Essential},
				{Title: "All of Statistics", Author: "Larry Wasserman", Category: Essential},
				{Title: "All of Nonparametric Statistics", Author: "Larry Wasserman", Category: Essential},
			},
		},
		{
			ID: "TimeSeriesAnalysis", Name: "Time Series Analysis", Category: Essential,
			Books: []Book{
				{Title: "Introduction to Time Series Analysis and Forecasting", Author: "Douglas C. Montgomery, Cheryl L. Jennings, Murat Kulahci", Category: Essential},
				{Title: "Introduction to Time Series and Forecasting", Author: "Peter J. Brockwell, Richard A. Davis", Category: Essential},
				{Title: "Applied Time Series Analysis", Author: "Terence C. Mills", Category: Essential},
			},
		},
		{
			ID: "StochasticCalculus", Name: "Stochastic Calculus", Category: Essential,
			Books: []Book{
				{Title: "Applied Stochastic Differential Equations", Author: "Simo Särkkä, Arno Solin", Category: Essential},
				{Title: "A First Course in Stochastic Calculus", Author: "Louis-Pierre Arguin", Category: Essential},
				{Title: "Introduction To Stochastic Calculus With Applications", Author: "Fima C. Klebaner", Category: Essential},
				{Title: "Stochastic Calculus", Author: "Mircea Grigoriu", Category: Essential},
				{Title: "Stochastic Calculus: An Introduction Through Theory and Exercises", Author: "Paolo Baldi", Category: Essential},
			},
		},
		{
			ID: "LatticeTheory", Name: "Introduction to Lattice Theory", Category: Essential,
			Books: []Book{
				{Title: "Introduction to Lattices and Order", Author: "B.A. Davey", Category: Essential},
				{Title: "Lattices and Ordered Sets", Author: "Steven Roman", Category: Essential},
			},
		},
		{
			ID: "NumberTheory", Name: "Introduction to Number Theory", Category: Essential,
			Books: []Book{
				{Title: "Elementary Number Theory", Author: "David Burton", Category: Essential},
				{Title: "Elementary Number Theory with Applications", Author: "Thomas Koshy", Category: Essential},
				{Title: "Elementary Number Theory", Author: "Kenneth H. Rosen", Category: Essential},
			},
		},
		{
			ID: "AlgebraicNumbers", Name: "Algebraic Number Theory", Category: Essential,
			Books: []Book{
				{Title: "An Introduction to the Theory of Numbers", Author: "Ivan Niven, Herbert S. Zuckerman, Hugh L. Montgomery", Category: Essential},
				{Title: "Number Fields", Author: "Daniel A. Marcus", Category: Essential},
			},
		},

		// Endpoints of defaultConnections without a reading list of their own.
		{ID: "AbstractAlgebra", Name: "Abstract Algebra", Category: Essential},
		{ID: "AdvancedAnalysis", Name: "Advanced Analysis", Category: Essential},
	}
}

// defaultConnections is the compiled-in prerequisite list in declaration order.
func defaultConnections() []Connection {
	return []Connection{
		// Core Philosophy Path
		{From: "Start1", To: "IntroPhilosophy"},
		{From: "IntroPhilosophy", To: "IntroLogic"},
		{From: "IntroLogic", To: "PhilosophyLanguage"},
		{From: "PhilosophyLanguage", To: "PhilosophyMath"},
		{From: "PhilosophyMath", To: "MathLogic"},

		// Core Mathematics Path
		{From: "Start2", To: "Precalculus"},
		{From: "Precalculus", To: "Calculus"},
		{From: "Calculus", To: "LinearAlgebra"},
		{From: "LinearAlgebra", To: "ProofsDiscrete"},
		{From: "Calculus", To: "Physics"},

		// Pure Mathematics Branches
		{From: "ProofsDiscrete", To: "RealAnalysis"},
		{From: "ProofsDiscrete", To: "NumberTheory"},
		{From: "ProofsDiscrete", To: "AbstractAlgebra"},
		{From: "RealAnalysis", To: "ComplexAnalysis"},
		{From: "RealAnalysis", To: "GeneralTopology"},
		{From: "RealAnalysis", To: "FunctionalAnalysis"},
		{From: "ComplexAnalysis", To: "AdvancedAnalysis"},

		// Geometry Track
		{From: "ProofsDiscrete", To: "EuclideanGeometry"},
		{From: "EuclideanGeometry", To: "DifferentialGeometry"},
		{From: "AbstractAlgebra", To: "AlgebraicGeometry"},
		{From: "GeneralTopology", To: "DifferentialGeometry"},
		{From: "TopologyMotivation", To: "AlgebraicTopology"},
		{From: "AlgebraicGeometryMotivation", To: "AlgebraicGeometry"},

		// Algebra Track
		{From: "LinearAlgebra", To: "AdvancedLinearAlgebra"},
		{From: "AdvancedLinearAlgebra", To: "AlgebraicNumbers"},
		{From: "NumberTheory", To: "AlgebraicNumbers"},

		// Logic and Foundations Track
		{From: "MathLogic", To: "SetTheory"},
		{From: "SetTheory", To: "CategoryTheory"},
		{From: "SetTheory", To: "UniversalAlgebra"},
		{From: "UniversalAlgebra", To: "CategoryTheory"},
		{From: "AbstractAlgebra", To: "UniversalAlgebra"},
		{From: "AbstractAlgebra", To: "LatticeTheory"},
		{From: "LatticeTheory", To: "CategoryTheory"},

		// Applied Mathematics Track
		{From: "Calculus", To: "DifferentialEquations"},
		{From: "Calculus", To: "ProbabilityTheory"},
		{From: "ProbabilityTheory", To: "Statistics"},
		{From: "Statistics", To: "AdvancedStatistics"},
		{From: "ProbabilityTheory", To: "StochasticCalculus"},
		{From: "Statistics", To: "TimeSeriesAnalysis"},
		{From: "LinearAlgebra", To: "NumericalAnalysis"},
		{From: "LinearAlgebra", To: "OptimizationTheory"},
		{From: "OptimizationTheory", To: "ConvexOptimization"},

		// Programming and Applications
		{From: "ProofsDiscrete", To: "ProgrammingPython"},

		// Cross Connections
		{From: "ComplexAnalysis", To: "AlgebraicGeometry"},
		{From: "DifferentialGeometry", To: "AlgebraicGeometry"},
		{From: "NumberTheory", To: "AlgebraicGeometry"},
		{From: "GeneralTopology", To: "AlgebraicGeometry"},
		{From: "FunctionalAnalysis", To: "AdvancedAnalysis"},

		// Motivation and Topology Links
		{From: "CategoryTheory", To: "AlgebraicGeometry"},
		{From: "TopologyMotivation", To: "GeneralTopology"},
		{From: "AlgebraicTopology", To: "AlgebraicGeometry"},
	}
}
